package orders

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the Orders feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, sellerHeader string) *Feature {
	svc := NewService(db, logger)
	h := NewHandler(svc, sellerHeader)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "orders"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service to other features and commands.
func (f *Feature) Service() *Service {
	return f.service
}
