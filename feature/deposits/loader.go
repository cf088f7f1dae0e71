package deposits

import (
	"deposit-desk/core/storage"
	"deposit-desk/feature/deposits/recognition"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the Deposits feature.
func NewFeature(db *gorm.DB, client storage.Client, bucket string, recognizer recognition.Client, logger *zap.Logger, sellerHeader string) *Feature {
	svc := NewService(db, client, bucket, recognizer, logger)
	h := NewHandler(svc, sellerHeader)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "deposits"
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
