package reconcile

import (
	"errors"

	"deposit-desk/core/logger"
	"deposit-desk/feature/reconcile/engine"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation passes.
type Handler struct {
	service      *Service
	sellerHeader string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, sellerHeader string) *Handler {
	return &Handler{service: service, sellerHeader: sellerHeader}
}

// RegisterRoutes registers the reconcile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Post("/run", h.HandleRun)
	group.Post("/preview", h.HandlePreview)
	group.Get("/runs", h.HandleListRuns)
}

func (h *Handler) seller(c *fiber.Ctx) string {
	return c.Get(h.sellerHeader)
}

// runResponse pairs the persisted run record with the full pass outcome.
type runResponse struct {
	RunID   string         `json:"run_id"`
	Summary engine.Summary `json:"summary"`
	Matches []engine.Match `json:"matches"`
}

// HandleRun commits a reconciliation pass for the seller.
// @Summary Run Reconciliation
// @Description Match the deposit pool against open orders and commit the outcome.
// @Tags reconcile
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Success 200 {object} runResponse
// @Failure 422 {object} map[string]interface{} "Invalid order or deposit data"
// @Router /reconcile/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)

	run, result, err := h.service.Run(c.Context(), sellerID)
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			l.Warn("Reconciliation rejected", zap.Error(verr))
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":  "invalid input data",
				"record": verr.Record,
				"id":     verr.ID,
				"field":  verr.Field,
				"value":  verr.Value,
			})
		}
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runResponse{RunID: run.ID, Summary: result.Summary, Matches: result.Matches})
}

// HandlePreview computes a pass without committing anything.
// @Summary Preview Reconciliation
// @Description Compute the matching outcome without changing orders or deposits.
// @Tags reconcile
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Success 200 {object} engine.Result
// @Failure 422 {object} map[string]interface{} "Invalid order or deposit data"
// @Router /reconcile/preview [post]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	result, err := h.service.Preview(c.Context(), sellerID)
	if err != nil {
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			l.Warn("Preview rejected", zap.Error(verr))
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":  "invalid input data",
				"record": verr.Record,
				"id":     verr.ID,
				"field":  verr.Field,
				"value":  verr.Value,
			})
		}
		l.Error("Preview failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleListRuns returns the seller's run history, newest first.
// @Summary List Runs
// @Description List committed reconciliation runs for the seller.
// @Tags reconcile
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Success 200 {array} models.Run
// @Router /reconcile/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	runs, err := h.service.Runs(c.Context(), sellerID)
	if err != nil {
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Error("Run listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}
