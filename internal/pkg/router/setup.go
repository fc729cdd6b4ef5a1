package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/learnhub/app/controllers"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App) {
	// Install HttpRouter first so the route context middleware runs before
	// everything else, then the API routes. The not-found fallback must come
	// last: it catches whatever no other route claimed.
	setup(app, NewHttpRouter(), NewApiRouter())
	app.Use(controllers.HandleNotFound)
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
