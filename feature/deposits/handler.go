package deposits

import (
	"bytes"
	"io"

	"deposit-desk/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the deposit pool.
type Handler struct {
	service      *Service
	sellerHeader string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, sellerHeader string) *Handler {
	return &Handler{service: service, sellerHeader: sellerHeader}
}

// RegisterRoutes registers the deposit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/deposits")
	group.Get("/", h.HandleListDeposits)
	group.Post("/", h.HandleCreateDeposit)
	group.Post("/recognize", h.HandleRecognize)
	group.Get("/export", h.HandleExportDeposits)
}

func (h *Handler) seller(c *fiber.Ctx) string {
	return c.Get(h.sellerHeader)
}

// HandleListDeposits returns the seller's deposit pool in arrival order.
// @Summary List Deposits
// @Description List the seller's unmatched deposit pool.
// @Tags deposits
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Success 200 {array} models.Deposit
// @Router /deposits [get]
func (h *Handler) HandleListDeposits(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	deposits, err := h.service.List(c.Context(), sellerID)
	if err != nil {
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Error("Deposit listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(deposits)
}

// HandleCreateDeposit records a manually entered deposit.
// @Summary Create Deposit
// @Description Record a manually entered bank-transfer deposit.
// @Tags deposits
// @Accept json
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param deposit body CreateInput true "Deposit fields"
// @Success 201 {object} models.Deposit
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /deposits [post]
func (h *Handler) HandleCreateDeposit(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	deposit, err := h.service.Create(c.Context(), sellerID, in)
	if err != nil {
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Warn("Deposit creation rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(deposit)
}

// HandleRecognize creates a deposit from an evidence artifact: either an
// uploaded screenshot (multipart field "image") or a free-text transfer
// notice (form/JSON field "text"). The recognition call is slow and may
// fail; on failure no deposit is added.
// @Summary Recognize Deposit
// @Description Create a deposit from a transfer screenshot or notice text via the recognition service.
// @Tags deposits
// @Accept mpfd
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param image formData file false "Bank transfer screenshot"
// @Param text formData string false "Free-text transfer notice"
// @Success 201 {object} models.Deposit
// @Failure 400 {object} map[string]string "No artifact supplied"
// @Failure 502 {object} map[string]string "Recognition failed"
// @Router /deposits/recognize [post]
func (h *Handler) HandleRecognize(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)

	if file, err := c.FormFile("image"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable upload"})
		}
		defer src.Close()

		image, err := io.ReadAll(src)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable upload"})
		}

		deposit, err := h.service.CreateFromImage(c.Context(), sellerID, file.Filename, image)
		if err != nil {
			l.Error("Image recognition failed", zap.String("filename", file.Filename), zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(deposit)
	}

	text := c.FormValue("text")
	if text == "" {
		// Fall back to a JSON body {"text": "..."}.
		var body struct {
			Text string `json:"text"`
		}
		if err := c.BodyParser(&body); err == nil {
			text = body.Text
		}
	}
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "supply an image or text"})
	}

	deposit, err := h.service.CreateFromText(c.Context(), sellerID, text)
	if err != nil {
		l.Error("Text recognition failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(deposit)
}

// HandleExportDeposits streams the seller's deposit pool as CSV.
// @Summary Export Deposits
// @Description Export the seller's deposit pool as a CSV file.
// @Tags deposits
// @Produce text/csv
// @Param X-Seller-ID header string true "Seller scope"
// @Success 200 {string} string "CSV content"
// @Router /deposits/export [get]
func (h *Handler) HandleExportDeposits(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	var buf bytes.Buffer
	if err := h.service.ExportCSV(c.Context(), sellerID, &buf); err != nil {
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Error("Deposit export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="deposits.csv"`)
	return c.Send(buf.Bytes())
}
