package main

import (
	"fmt"
	"net/http"
	"net/url"

	"apidiscovery/service"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Cat is the entity served by the cat dependency.
type Cat struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type weatherServer struct {
	cats *service.CrudClient[Cat]
}

// GetCat (GET /v1/cats/:id) reads the cat through the discovered cat service. Returns 503 while the cat
// service cannot be located and 502 when it answers with an error.
func (s *weatherServer) GetCat(ectx echo.Context) error {
	id, err := catID(ectx)
	if err != nil {
		return err
	}
	cat, err := s.cats.GetByID(ectx.Request().Context(), id)
	if err != nil {
		return fmt.Errorf("getCat failed to fetch cat, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, cat)
}

// catID returns the decoded :id parameter. echo routes on the escaped path when the request has one, and
// its params are then still escaped.
func catID(ectx echo.Context) (string, error) {
	id := ectx.Param("id")
	if ectx.Request().URL.RawPath == "" {
		return id, nil
	}
	unescaped, err := url.PathUnescape(id)
	if err != nil {
		return "", service.NewBadParameterError("cat id is not a valid path segment", err)
	}
	return unescaped, nil
}

// newEcho builds the weather HTTP server. The cats route is only mounted when a cat client is given.
func newEcho(cats *service.CrudClient[Cat], logger log.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Recover())
	service.RegisterErrorHandler(e, logger)

	if cats != nil {
		server := &weatherServer{cats: cats}
		e.GET("/v1/cats/:id", server.GetCat)
	}
	return e
}
