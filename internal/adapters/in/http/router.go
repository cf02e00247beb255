package http

import (
	"encoding/json"
	"net/http"

	"routing/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// apiDoc serves the OpenAPI document to the swagger UI.
type apiDoc struct {
	doc string
}

func (d apiDoc) ReadDoc() string {
	return d.doc
}

// NewRouter builds the echo instance serving health, metrics, API docs and
// the API routes. Requests to API paths are validated against the OpenAPI
// document first.
func NewRouter(server *Server) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	doc, err := json.Marshal(swagger)
	if err != nil {
		return nil, err
	}
	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, apiDoc{doc: string(doc)})
	}

	validator, err := OpenAPIValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
