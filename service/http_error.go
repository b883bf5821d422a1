package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const msgInternalServerError = "an internal server error has occurred"

// HeaderTraceParent carries the trace id of an error response next to X-Request-Id.
const HeaderTraceParent = "traceparent"

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	var errorCodeToStatusCodeMaps = make(map[string]int)
	errorCodeToStatusCodeMaps[ErrBadParameter] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrEntityNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrInternalServerError] = http.StatusInternalServerError
	errorCodeToStatusCodeMaps[ErrTransport] = http.StatusBadGateway
	errorCodeToStatusCodeMaps[ErrDependencyUnresolved] = http.StatusServiceUnavailable

	return errorCodeToStatusCodeMaps
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]
	if ok {
		return status
	}

	return http.StatusInternalServerError
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	de := ToDiscoveryError(err)
	if de == nil {
		de = NewDiscoveryError(ErrInternalServerError, msgInternalServerError, err)
	}

	var statusCode int
	var he *echo.HTTPError
	if he, _ = err.(*echo.HTTPError); he != nil {
		codeStr := ErrInternalServerError
		if he.Internal != nil {
			if herr, ok := he.Internal.(*echo.HTTPError); ok {
				he = herr
			}
			var requestError *openapi3filter.RequestError
			if errors.As(he.Internal, &requestError) {
				codeStr = ErrBadParameter
			}
		}
		if he.Code < http.StatusInternalServerError && codeStr == ErrInternalServerError {
			codeStr = ErrBadParameter
		}

		m, _ := he.Message.(string)
		de = NewDiscoveryError(codeStr, m, err)
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(de.Code)
	}

	description := de.Message
	if statusCode == http.StatusInternalServerError {
		description = msgInternalServerError
	}

	traceID := c.Response().Header().Get(echo.HeaderXRequestID)
	if traceID == "" {
		traceID = uuid.NewString()
		c.Response().Header().Set(echo.HeaderXRequestID, traceID)
	}
	c.Response().Header().Set(HeaderTraceParent, traceID)

	level.Error(h.logger).Log(
		"msg", "HTTP request error",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", statusCode,
		"code", de.Code,
		"trace_id", traceID,
		"err", err,
	)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(statusCode)
		return
	}
	_ = c.JSON(statusCode, ErrResponse{Description: description, TraceID: traceID})
}

// ErrResponse is the error body returned by the registry and by consuming services.
type ErrResponse struct {
	Description string `json:"description"`
	TraceID     string `json:"traceId"`
}
