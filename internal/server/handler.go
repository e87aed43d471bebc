package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/logstream/pipeline/internal/logger"
	"github.com/logstream/pipeline/internal/metrics"
	"github.com/logstream/pipeline/internal/model"
	"github.com/logstream/pipeline/internal/service/ingest"
	searchsvc "github.com/logstream/pipeline/internal/service/search"
)

// Handler is the fiber handler set, thin over the domain services,
// following the teacher's Handler shape in internal/server/handler.go.
type Handler struct {
	Ingest ingest.Service
	Search searchsvc.Service
	Health *metrics.HealthChecker
	Logger logger.InterfaceLogger
}

func NewHandler(ingestSvc ingest.Service, searchSvc searchsvc.Service, health *metrics.HealthChecker, log logger.InterfaceLogger) *Handler {
	return &Handler{Ingest: ingestSvc, Search: searchSvc, Health: health, Logger: log}
}

// postLogHandler implements POST /logs (spec §6).
//
// @Summary      Ingest one log record
// @Accept       json
// @Produce      json
// @Success      202
// @Failure      400  {object}  map[string]interface{}
// @Router       /logs [post]
func (h *Handler) postLogHandler(c *fiber.Ctx) error {
	var record model.LogRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errBody(fiber.StatusBadRequest, "invalid request body"))
	}

	if err := h.Ingest.AcceptOne(c.Context(), record); err != nil {
		return h.writeIngestError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// postLogBatchHandler implements POST /logs/batch (spec §6).
//
// @Summary      Ingest a batch of log records
// @Accept       json
// @Produce      json
// @Success      202  {object}  map[string]int
// @Failure      400  {object}  map[string]interface{}
// @Router       /logs/batch [post]
func (h *Handler) postLogBatchHandler(c *fiber.Ctx) error {
	var records []model.LogRecord
	if err := c.BodyParser(&records); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errBody(fiber.StatusBadRequest, "invalid request body"))
	}

	n, err := h.Ingest.AcceptBatch(c.Context(), records)
	if err != nil {
		return h.writeIngestError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"accepted": n})
}

func (h *Handler) writeIngestError(c *fiber.Ctx, err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"fields": verr.Fields})
	}
	if errors.Is(err, context.Canceled) {
		return c.Status(fiber.StatusRequestTimeout).JSON(errBody(fiber.StatusRequestTimeout, "canceled"))
	}
	h.Logger.Errorf("ingest: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(errBody(fiber.StatusInternalServerError, "internal error"))
}

// getSearchHandler implements GET /logs/search (spec §6).
//
// @Summary      Search log records
// @Produce      json
// @Success      200  {object}  model.SearchResult
// @Failure      400  {object}  map[string]interface{}
// @Router       /logs/search [get]
func (h *Handler) getSearchHandler(c *fiber.Ctx) error {
	req, err := parseSearchRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errBody(fiber.StatusBadRequest, err.Error()))
	}

	result, err := h.Search.Search(c.Context(), *req)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"fields": verr.Fields})
		}
		h.Logger.Errorf("search: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errBody(fiber.StatusInternalServerError, "internal error"))
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func parseSearchRequest(c *fiber.Ctx) (*model.SearchRequest, error) {
	req := &model.SearchRequest{
		Page: c.QueryInt("page", 0),
		Size: c.QueryInt("size", model.DefaultPageSize),
	}

	if v := c.Query("serviceId"); v != "" {
		req.ServiceID = &v
	}
	if v := c.Query("traceId"); v != "" {
		req.TraceID = &v
	}
	if v := c.Query("query"); v != "" {
		req.Query = &v
	}
	if v := c.Query("level"); v != "" {
		lvl, ok := model.ParseLevel(v)
		if !ok {
			return nil, errors.New("level must be one of DEBUG|INFO|WARNING|ERROR")
		}
		req.Level = &lvl
	}
	if v := c.Query("startTime"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, errors.New("startTime must be ISO-8601")
		}
		req.StartTime = &t
	}
	if v := c.Query("endTime"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, errors.New("endTime must be ISO-8601")
		}
		req.EndTime = &t
	}
	return req, nil
}

// getHealthHandler implements the liveness check of spec §6.
//
// @Summary      Liveness check
// @Produce      json
// @Success      200  {array}  metrics.Status
// @Router       /healthz [get]
func (h *Handler) getHealthHandler(c *fiber.Ctx) error {
	statuses := h.Health.Check(c.Context())
	code := fiber.StatusOK
	for _, s := range statuses {
		if s.State == "down" {
			code = fiber.StatusServiceUnavailable
			break
		}
	}
	return c.Status(code).JSON(statuses)
}

func errBody(status int, msg string) fiber.Map {
	return fiber.Map{"status": status, "msg": msg}
}
