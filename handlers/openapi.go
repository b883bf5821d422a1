package handlers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// LoadOpenAPI parses and validates the embedded registry API document.
func LoadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// NewOpenAPIValidator returns echo middleware that checks requests against the embedded document.
// Violations become 400 echo.HTTPErrors carrying the *openapi3filter.RequestError as Internal.
// Requests for routes the document does not describe pass through to echo routing.
func NewOpenAPIValidator() (echo.MiddlewareFunc, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	return openAPIMiddleware(router), nil
}

func openAPIMiddleware(router routers.Router) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ectx echo.Context) error {
			req := ectx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ectx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return &echo.HTTPError{
					Code:     http.StatusBadRequest,
					Message:  validationMessage(err),
					Internal: err,
				}
			}
			return next(ectx)
		}
	}
}

func validationMessage(err error) string {
	if reqErr, ok := err.(*openapi3filter.RequestError); ok && reqErr.Parameter != nil && reqErr.Err != nil {
		return fmt.Sprintf("parameter %q in %s is invalid: %v", reqErr.Parameter.Name, reqErr.Parameter.In, reqErr.Err)
	}
	return err.Error()
}
