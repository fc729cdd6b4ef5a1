package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/learnhub/internal/pkg/routecontext"
	"github.com/example/learnhub/internal/pkg/routing"
)

// RouteContextMiddleware resolves every request path through the static
// route table and stores the result in the request locals. Handlers and the
// not-found fallback read the resolved view from there instead of resolving
// again.
func RouteContextMiddleware(c *fiber.Ctx) error {
	c.Locals(routecontext.LocalsKey, routecontext.RouteContext{
		Path: c.Path(),
		View: routing.Resolve(c.Path()),
	})
	return c.Next()
}
