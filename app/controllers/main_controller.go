package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/example/learnhub/app/repository"
	"github.com/example/learnhub/internal/pkg/env"
	"github.com/example/learnhub/internal/pkg/metrics/counter"
	"github.com/example/learnhub/internal/pkg/routecontext"
	"github.com/example/learnhub/internal/pkg/routing"
	"github.com/example/learnhub/internal/pkg/viewmodel"
)

const mainLayout = "layouts/main"

// HandleHome renders the home page with the guide catalog.
func HandleHome(c *fiber.Ctx) error {
	trackPageView(routing.ViewHome)

	guides, err := repository.GetGlobalFactory().GetGuideRepository().GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load guide catalog")
	}

	return c.Render("home", viewmodel.HomePage{
		Layout: layoutFor(c, "Home"),
		Groups: viewmodel.GroupGuides(guides),
	}, mainLayout)
}

// HandleStartLearning renders the start-learning page.
func HandleStartLearning(c *fiber.Ctx) error {
	trackPageView(routing.ViewStartLearning)

	return c.Render("start_learning", viewmodel.StartLearningPage{
		Layout: layoutFor(c, "Start Learning"),
	}, mainLayout)
}

// HandleNotFound renders the minimal fallback for unmatched paths. An
// unmatched path is not an error condition: the response is a 404 with an
// empty-ish page, never a fault.
func HandleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("not_found", viewmodel.NotFoundPage{
		Layout: layoutFor(c, "Not Found"),
		Path:   c.Path(),
	}, mainLayout)
}

func layoutFor(c *fiber.Ctx, title string) viewmodel.Layout {
	return viewmodel.Layout{
		Title:  title,
		Active: routecontext.CurrentView(c).String(),
		IsDEV:  env.IsDev(),
	}
}

// trackPageView increments the page view counter for a rendered view.
// Counters are best effort; rendering never fails because of them.
func trackPageView(view routing.View) {
	if err := counter.AddPageView(view.String()); err != nil {
		if errors.Is(err, counter.ErrUnavailable) {
			return
		}
		log.Printf("page view counter: %v", err)
	}
}
