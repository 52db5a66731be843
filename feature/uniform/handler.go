package uniform

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"uniform-manager/core/logger"
	"uniform-manager/core/utils"
	"uniform-manager/feature/uniform/errs"
	"uniform-manager/feature/uniform/reconcile"
)

// Handler handles HTTP requests for member uniforms.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the uniform routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/uniform")
	group.Put("/:memberId", h.HandleUpdate)
	group.Get("/:memberId", h.HandleGet)
}

// ItemPayload is one requested item. Size and quantity accept numbers or strings.
type ItemPayload struct {
	Category string `json:"category" example:"Uniform No 3"`
	Type     string `json:"type" example:"Boot"`
	Size     any    `json:"size" swaggertype:"string" example:"UK 7"`
	Quantity any    `json:"quantity" swaggertype:"integer" example:"1"`
	Status   string `json:"status" example:"Available"`
}

// UpdatePayload is the complete desired item set of a member.
type UpdatePayload struct {
	Items []ItemPayload `json:"items"`
}

// HandleUpdate reconciles a member's uniform record.
// @Summary Update Member Uniform
// @Description Replaces the member's issued items with the given set and moves stock by the difference. All items are validated first; any problem rejects the whole request.
// @Tags uniform
// @Accept json
// @Produce json
// @Param memberId path string true "Member ID"
// @Param dryRun query boolean false "Plan without writing"
// @Param payload body UpdatePayload true "Desired items"
// @Success 200 {object} reconcile.Result "Reconciled"
// @Success 202 {object} map[string]string "Identical request in progress"
// @Failure 400 {object} map[string]any "Validation problems"
// @Failure 404 {object} map[string]any "No matching stock record"
// @Failure 409 {object} map[string]any "Insufficient stock or conflict"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /uniform/{memberId} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	memberID := strings.TrimSpace(c.Params("memberId"))
	l := logger.WithMember(logger.WithRayID(h.service.logger, c), memberID)

	var payload UpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body: " + err.Error()})
	}

	req, err := payload.Request(memberID, c.QueryBool("dryRun"))
	if err != nil {
		return h.respondError(c, l, err)
	}

	res, err := h.service.Reconcile(c.Context(), req)

	var dup *errs.DuplicateRequestError
	if errors.As(err, &dup) {
		if dup.InProgress {
			l.Info("Identical request still in progress")
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "processing"})
		}
		l.Info("Identical request already processed")
		body := fiber.Map{"status": "processed"}
		if res != nil {
			body["result"] = res
		}
		return c.JSON(body)
	}
	if err != nil {
		return h.respondError(c, l, err)
	}
	return c.JSON(res)
}

// HandleGet returns a member's uniform record.
// @Summary Get Member Uniform
// @Description Returns the items currently issued to the member.
// @Tags uniform
// @Produce json
// @Param memberId path string true "Member ID"
// @Success 200 {object} map[string]any "Member record"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /uniform/{memberId} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	memberID := strings.TrimSpace(c.Params("memberId"))

	items, err := h.service.Record(c.Context(), memberID)
	if errors.Is(err, ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to load uniform record", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"memberId": memberID, "items": items})
}

// Request converts the payload into an engine request. Quantities that are
// not integers are reported together as a BatchError.
func (u UpdatePayload) Request(memberID string, dryRun bool) (reconcile.Request, error) {
	batch := &errs.BatchError{}
	items := make([]reconcile.Item, 0, len(u.Items))
	for i, p := range u.Items {
		qty, err := utils.ToInt(p.Quantity)
		if err != nil {
			batch.Add(i, errs.NewValidationError("quantity", p.Quantity, err.Error()))
		}
		items = append(items, reconcile.Item{
			Category: p.Category,
			Type:     p.Type,
			Size:     utils.ToString(p.Size),
			Quantity: qty,
			Status:   p.Status,
		})
	}
	if err := batch.ErrOrNil(); err != nil {
		return reconcile.Request{}, err
	}
	return reconcile.Request{MemberID: memberID, Items: items, DryRun: dryRun}, nil
}

func (h *Handler) respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var batch *errs.BatchError
	if errors.As(err, &batch) {
		status := batchStatus(batch)
		l.Warn("Uniform update rejected", zap.Int("status", status), zap.Int("problems", len(batch.Problems)))
		return c.Status(status).JSON(fiber.Map{"error": err.Error(), "problems": batch.Problems})
	}
	if errors.Is(err, errs.ErrConcurrencyConflict) {
		l.Warn("Uniform update conflicted", zap.Error(err))
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Uniform update failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// batchStatus picks the most fundamental problem: malformed input, then
// unknown stock, then shortage.
func batchStatus(b *errs.BatchError) int {
	status := fiber.StatusInternalServerError
	rank := map[string]int{
		errs.CodeValidation:        fiber.StatusBadRequest,
		errs.CodeNotFound:          fiber.StatusNotFound,
		errs.CodeInsufficientStock: fiber.StatusConflict,
		errs.CodeConflict:          fiber.StatusConflict,
	}
	for _, p := range b.Problems {
		if s, ok := rank[p.Code]; ok && (status == fiber.StatusInternalServerError || s < status) {
			status = s
		}
	}
	return status
}
