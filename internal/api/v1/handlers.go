package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/learnhub/app/repository"
	"github.com/example/learnhub/internal/pkg/constants"
	"github.com/example/learnhub/internal/pkg/metrics/counter"
	"github.com/example/learnhub/internal/pkg/routing"
)

// APIServer serves the read-only JSON surface of the site: the route table,
// the guide catalog, and page view counters.
type APIServer struct {
	guides repository.GuideRepository
}

// NewAPIServer creates a new API server instance
func NewAPIServer(guides repository.GuideRepository) *APIServer {
	return &APIServer{guides: guides}
}

// RegisterHandlers mounts the v1 routes on the given router group.
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)
	router.Get("/routes", s.GetRoutes)
	router.Get("/guides", s.GetGuides)
	router.Get("/stats", s.GetStats)
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ping": "pong"})
}

// GetRoutes returns the static route table of the shell.
func (s *APIServer) GetRoutes(c *fiber.Ctx) error {
	table := routing.Table()
	out := make([]fiber.Map, 0, len(table))
	for _, r := range table {
		out = append(out, fiber.Map{
			"pattern": r.Pattern,
			"view":    r.View.String(),
		})
	}
	return c.JSON(fiber.Map{"base_path": constants.BasePath, "routes": out})
}

// GetGuides returns the guide catalog.
func (s *APIServer) GetGuides(c *fiber.Ctx) error {
	guides, err := s.guides.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "catalog_unavailable",
			"message": "Failed to read the guide catalog",
		})
	}
	return c.JSON(fiber.Map{"count": len(guides), "guides": guides})
}

// GetStats returns the page view counters. Counters live in the cache and
// are best effort; when the cache is unreachable the endpoint reports 503
// rather than failing the whole app.
func (s *APIServer) GetStats(c *fiber.Ctx) error {
	views, err := counter.PageViews()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "stats_unavailable",
			"message": "Page view counters are not available",
		})
	}
	return c.JSON(fiber.Map{"page_views": views})
}
