package stock

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"uniform-manager/core/logger"
)

// Handler handles HTTP requests for the forecast snapshot.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/stock/snapshot")
	group.Get("/", h.HandleSnapshot)
	group.Get("/export", h.HandleExport)
	group.Post("/publish", h.HandlePublish)
}

// HandleSnapshot returns the current snapshot.
// @Summary Stock Snapshot
// @Description Read-only stock quantities and issued demand per canonical item, cached for a short TTL.
// @Tags stock
// @Produce json
// @Param refresh query boolean false "Rebuild instead of serving the cached copy"
// @Success 200 {object} Snapshot "Snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stock/snapshot [get]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	if c.QueryBool("refresh") {
		h.service.Invalidate()
	}
	snap, err := h.service.Snapshot(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to build snapshot", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(snap)
}

// HandleExport streams the snapshot workbook.
// @Summary Export Stock Snapshot
// @Description Downloads the snapshot as an xlsx workbook with Stock and Issued Demand sheets.
// @Tags stock
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Workbook"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stock/snapshot/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	data, err := h.service.Export(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to export snapshot", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_snapshot.xlsx"`)
	return c.Send(data)
}

// HandlePublish uploads the workbook to object storage.
// @Summary Publish Stock Snapshot
// @Description Uploads the snapshot workbook to the forecast object in the storage bucket.
// @Tags stock
// @Produce json
// @Success 200 {object} PublishResult "Published"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stock/snapshot/publish [post]
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.service.Publish(c.Context())
	if errors.Is(err, ErrStorageDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Failed to publish snapshot", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}
