package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/logstream/pipeline/internal/logger"
	"github.com/logstream/pipeline/internal/metrics"
	"github.com/logstream/pipeline/internal/service/ingest"
	searchsvc "github.com/logstream/pipeline/internal/service/search"
)

// NewServer builds the fiber app wiring ingest, search, health, and
// metrics endpoints, following the teacher's NewServer shape
// (CORS middleware + thin handler registration) in internal/server/server.go.
func NewServer(ingestSvc ingest.Service, searchSvc searchsvc.Service, health *metrics.HealthChecker, log logger.InterfaceLogger) *fiber.App {
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false,
	}))

	h := NewHandler(ingestSvc, searchSvc, health, log)
	h.registerRoutes(app)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}
