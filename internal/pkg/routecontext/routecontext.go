package routecontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/learnhub/internal/pkg/routing"
)

// LocalsKey is where the middleware stores the context on the fiber locals.
const LocalsKey = "ROUTE_CONTEXT"

// RouteContext is the per-request routing state: the requested path and the
// view it resolved to. It is built fresh for every request and is the single
// source of truth for "what is currently displayed".
type RouteContext struct {
	Path string       `json:"path"`
	View routing.View `json:"view"`
}

// Get retrieves the route context from the fiber context. When the
// middleware did not run it falls back to resolving the path directly, so
// handlers behave the same in isolation.
func Get(c *fiber.Ctx) RouteContext {
	if ctx := c.Locals(LocalsKey); ctx != nil {
		return ctx.(RouteContext)
	}
	return RouteContext{Path: c.Path(), View: routing.Resolve(c.Path())}
}

// CurrentView returns the resolved view for the current request.
func CurrentView(c *fiber.Ctx) routing.View {
	return Get(c).View
}
