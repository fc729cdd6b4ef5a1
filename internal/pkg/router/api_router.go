package router

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"

	apiv1 "github.com/example/learnhub/internal/api/v1"

	"github.com/example/learnhub/app/repository"
	"github.com/example/learnhub/internal/pkg/cache"
	"github.com/example/learnhub/internal/pkg/constants"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, cors.New(), limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Storage:    limiterStorage(),
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer(repository.GetGlobalFactory().GetGuideRepository())
	apiv1.RegisterHandlers(v1, apiServer)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

// limiterStorage builds a Redis-backed storage for the rate limiter from the
// cache client configuration. When the cache is unreachable the limiter
// falls back to its in-memory default (nil storage).
func limiterStorage() fiber.Storage {
	if !cache.Connected() {
		return nil
	}

	host := "localhost"
	port := 6379
	password := ""
	if opts := cache.GetClient().Options(); opts != nil {
		if h, p, err := net.SplitHostPort(opts.Addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		password = opts.Password
	}

	return redisstorage.New(redisstorage.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1, // counters use database 0
		Reset:    false,
	})
}
