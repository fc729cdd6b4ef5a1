package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/learnhub/app/controllers"
	"github.com/example/learnhub/internal/pkg/constants"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Convenience redirects into the base path
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(constants.HomeRoute, fiber.StatusFound)
	})
	app.Get("/start-learning", func(c *fiber.Ctx) error {
		return c.Redirect(constants.StartLearningRoute, fiber.StatusFound)
	})

	// The two pages of the shell, mounted under the fixed base path
	learning := app.Group(constants.BasePath)
	learning.Get("/", controllers.HandleHome)
	learning.Get("/start-learning", controllers.HandleStartLearning)
}
