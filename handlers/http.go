// Package handlers contains the echo handlers of the discovery registry.
package handlers

import (
	"fmt"
	"net/http"

	"apidiscovery/helpers"
	"apidiscovery/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface over a service.Registry.
type HTTPServer struct {
	registry *service.Registry
	logger   log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(registry *service.Registry, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		registry: helpers.NilPanic(registry, "handlers.http.go: registry is required"),
		logger:   logger,
	}
}

// Lookup (GET /discovery) returns 200 with the record, 400 on invalid parameters, 404 when nothing is registered.
func (h *HTTPServer) Lookup(ectx echo.Context, params LookupParams) error {
	key := fromLookupParams(params)
	record, err := h.registry.Lookup(ectx.Request().Context(), key.Name, key.Version)
	if err != nil {
		return fmt.Errorf("lookup failed to find %s, err: %w", key, err)
	}

	return ectx.JSON(http.StatusOK, toEndpointResponse(record))
}

// Register (PUT /discovery) returns 200 with an empty body whether the record was stored or an earlier
// write for the same key was kept; 400 on parse or validation error.
func (h *HTTPServer) Register(ectx echo.Context) error {
	var req RegisterRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	record := fromRegisterRequest(req)
	if err := h.registry.Register(ectx.Request().Context(), record.Name, record.Version, record.Endpoint); err != nil {
		return fmt.Errorf("register failed to store %s, err: %w", record.Key(), err)
	}
	level.Debug(h.logger).Log("msg", "register accepted", "name", record.Name, "version", record.Version, "endpoint", record.Endpoint)

	return ectx.NoContent(http.StatusOK)
}
