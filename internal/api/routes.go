package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all HTTP routes on the Fiber app.
func RegisterRoutes(app *fiber.App, handler *BinHandler, fallbackConfigured bool) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	startedAt := time.Now()
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":              "ok",
			"uptime":              time.Since(startedAt).String(),
			"fallback_configured": fallbackConfigured,
		})
	})

	// Lookup endpoint, at the root for parity with the classic deployment and
	// under /api/v1 for new callers.
	app.Get("/", handler.LookupHandler)
	v1 := app.Group("/api/v1")
	v1.Get("/bins", handler.LookupHandler)
}
