package server

import "github.com/gofiber/fiber/v2"

// registerRoutes mounts the ingest, search, and health endpoints of spec §6.
func (h *Handler) registerRoutes(app *fiber.App) {
	app.Get("/healthz", h.getHealthHandler)

	app.Post("/logs", h.postLogHandler)
	app.Post("/logs/batch", h.postLogBatchHandler)
	app.Get("/logs/search", h.getSearchHandler)
}
