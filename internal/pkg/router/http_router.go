package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/learnhub/internal/pkg/middleware"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Apply RouteContext middleware globally as first middleware
	app.Use(middleware.RouteContextMiddleware)

	h.registerPublicRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
