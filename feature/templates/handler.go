package templates

import (
	"errors"
	"strconv"

	"deposit-desk/core/logger"
	"deposit-desk/feature/templates/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for chat reply templates.
type Handler struct {
	service      *Service
	sellerHeader string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, sellerHeader string) *Handler {
	return &Handler{service: service, sellerHeader: sellerHeader}
}

// RegisterRoutes registers the template routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/templates")
	group.Get("/", h.HandleListTemplates)
	group.Post("/", h.HandleCreateTemplate)
	group.Get("/categories", h.HandleListCategories)
	group.Get("/:id", h.HandleGetTemplate)
	group.Put("/:id", h.HandleUpdateTemplate)
	group.Delete("/:id", h.HandleDeleteTemplate)
}

func (h *Handler) seller(c *fiber.Ctx) string {
	return c.Get(h.sellerHeader)
}

func templateID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// HandleListCategories returns the fixed category set.
// @Summary List Categories
// @Description List the fixed template categories.
// @Tags templates
// @Produce json
// @Success 200 {array} string
// @Router /templates/categories [get]
func (h *Handler) HandleListCategories(c *fiber.Ctx) error {
	return c.JSON(models.Categories())
}

// HandleListTemplates returns the seller's templates.
// @Summary List Templates
// @Description List the seller's templates, optionally filtered by category.
// @Tags templates
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param category query string false "Category filter"
// @Success 200 {array} models.Template
// @Router /templates [get]
func (h *Handler) HandleListTemplates(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	templates, err := h.service.List(c.Context(), sellerID, c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(templates)
}

// HandleCreateTemplate stores a new template.
// @Summary Create Template
// @Description Add a canned chat reply to one of the fixed categories.
// @Tags templates
// @Accept json
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param template body CreateInput true "Template fields"
// @Success 201 {object} models.Template
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /templates [post]
func (h *Handler) HandleCreateTemplate(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	template, err := h.service.Create(c.Context(), sellerID, in)
	if err != nil {
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Warn("Template creation rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(template)
}

// HandleGetTemplate returns a single template.
// @Summary Get Template
// @Description Get one template by ID.
// @Tags templates
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param id path int true "Template ID"
// @Success 200 {object} models.Template
// @Failure 404 {object} map[string]string "Not found"
// @Router /templates/{id} [get]
func (h *Handler) HandleGetTemplate(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	id, err := templateID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template id"})
	}

	template, err := h.service.Get(c.Context(), sellerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "template not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(template)
}

// HandleUpdateTemplate modifies a template.
// @Summary Update Template
// @Description Update a template's fields.
// @Tags templates
// @Accept json
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param id path int true "Template ID"
// @Param template body UpdateInput true "Fields to change"
// @Success 200 {object} models.Template
// @Failure 404 {object} map[string]string "Not found"
// @Router /templates/{id} [put]
func (h *Handler) HandleUpdateTemplate(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	id, err := templateID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template id"})
	}

	var in UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	template, err := h.service.Update(c.Context(), sellerID, id, in)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "template not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(template)
}

// HandleDeleteTemplate removes a template.
// @Summary Delete Template
// @Description Remove a template.
// @Tags templates
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param id path int true "Template ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Router /templates/{id} [delete]
func (h *Handler) HandleDeleteTemplate(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	id, err := templateID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template id"})
	}

	if err := h.service.Delete(c.Context(), sellerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "template not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
