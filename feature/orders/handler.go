package orders

import (
	"bytes"
	"errors"

	"deposit-desk/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for orders.
type Handler struct {
	service      *Service
	sellerHeader string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, sellerHeader string) *Handler {
	return &Handler{service: service, sellerHeader: sellerHeader}
}

// RegisterRoutes registers the order routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/orders")
	group.Get("/", h.HandleListOrders)
	group.Post("/", h.HandleCreateOrder)
	group.Get("/export", h.HandleExportOrders)
	group.Get("/:id", h.HandleGetOrder)
}

func (h *Handler) seller(c *fiber.Ctx) string {
	return c.Get(h.sellerHeader)
}

// HandleListOrders returns the seller's orders in creation sequence.
// @Summary List Orders
// @Description List all orders of the seller, in creation sequence.
// @Tags orders
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Success 200 {array} models.Order
// @Failure 400 {object} map[string]string "Missing seller scope"
// @Router /orders [get]
func (h *Handler) HandleListOrders(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)

	orders, err := h.service.List(c.Context(), sellerID)
	if err != nil {
		l.Error("Order listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(orders)
}

// HandleCreateOrder stores a new PENDING order.
// @Summary Create Order
// @Description Create a new order in PENDING state.
// @Tags orders
// @Accept json
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param order body CreateInput true "Order fields"
// @Success 201 {object} models.Order
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /orders [post]
func (h *Handler) HandleCreateOrder(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)

	order, err := h.service.Create(c.Context(), sellerID, in)
	if err != nil {
		l.Warn("Order creation rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrder returns a single order.
// @Summary Get Order
// @Description Get a single order by id.
// @Tags orders
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} map[string]string "Not found"
// @Router /orders/{id} [get]
func (h *Handler) HandleGetOrder(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	order, err := h.service.Get(c.Context(), sellerID, c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
		}
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Error("Order lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(order)
}

// HandleExportOrders streams the seller's orders as CSV.
// @Summary Export Orders
// @Description Export the seller's orders as a CSV file.
// @Tags orders
// @Produce text/csv
// @Param X-Seller-ID header string true "Seller scope"
// @Success 200 {string} string "CSV content"
// @Router /orders/export [get]
func (h *Handler) HandleExportOrders(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	var buf bytes.Buffer
	if err := h.service.ExportCSV(c.Context(), sellerID, &buf); err != nil {
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Error("Order export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	return c.Send(buf.Bytes())
}
