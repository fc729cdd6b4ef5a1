package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"

	"github.com/example/learnhub/app/repository"
	"github.com/example/learnhub/internal/pkg/cache"
	"github.com/example/learnhub/internal/pkg/constants"
	"github.com/example/learnhub/internal/pkg/env"
	"github.com/example/learnhub/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	cache.SetupCache()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/learnhub to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// the guide catalog reads from the content directory
	repository.InitializeFactory(os.DirFS(basePath + "content/guides"))

	// init fiber app
	app := fiber.New(fiber.Config{
		AppName: "LearnHub",
		Views:   html.New(basePath+"views", ".html"),
	})

	// ignore and cache favicon
	app.Use(favicon.New(favicon.Config{
		File:         basePath + "public/assets/icons/favicon.ico",
		URL:          "/favicon.ico",
		CacheControl: "public, max-age=604800",
	}))

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// request IDs for log correlation
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASS", "learnhub"),
		},
	}), monitor.New())

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// the markdown guide documents, served verbatim
	app.Static(constants.GuidesRoute, basePath+"content/guides", fiber.Static{
		CacheDuration: 10 * time.Second,
		Compress:      true,
		MaxAge:        3600, // 1 hour
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}
