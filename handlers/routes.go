package handlers

import (
	"github.com/labstack/echo/v4"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Lookup returns the endpoint registered for a name and version.
	// (GET /discovery)
	Lookup(ctx echo.Context, params LookupParams) error
	// Register records an endpoint for a name and version; the first write wins.
	// (PUT /discovery)
	Register(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// Lookup converts echo context to params.
func (w *ServerInterfaceWrapper) Lookup(ctx echo.Context) error {
	params := LookupParams{
		Name:    ctx.QueryParam("name"),
		Version: ctx.QueryParam("version"),
	}
	return w.Handler.Lookup(ctx, params)
}

// Register converts echo context to params.
func (w *ServerInterfaceWrapper) Register(ctx echo.Context) error {
	return w.Handler.Register(ctx)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group the handlers are registered on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, prefixing each path with baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/discovery", wrapper.Lookup)
	router.PUT(baseURL+"/discovery", wrapper.Register)
}
