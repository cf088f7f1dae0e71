package templates

import (
	"context"
	"fmt"

	"deposit-desk/feature/templates/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles chat reply templates.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new templates service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CreateInput carries the fields of a new template.
type CreateInput struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// Create stores a new template for the seller.
func (s *Service) Create(ctx context.Context, sellerID string, in CreateInput) (*models.Template, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("seller id is required")
	}
	if !models.ValidCategory(in.Category) {
		return nil, fmt.Errorf("unknown category %q", in.Category)
	}
	if in.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if in.Body == "" {
		return nil, fmt.Errorf("body is required")
	}

	template := &models.Template{
		SellerID: sellerID,
		Category: in.Category,
		Title:    in.Title,
		Body:     in.Body,
	}
	if err := s.db.WithContext(ctx).Create(template).Error; err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	s.logger.Info("Template created",
		zap.Uint("template_id", template.ID),
		zap.String("seller_id", sellerID),
		zap.String("category", template.Category),
	)
	return template, nil
}

// List returns the seller's templates, optionally filtered by category.
func (s *Service) List(ctx context.Context, sellerID, category string) ([]models.Template, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	q := s.db.WithContext(ctx).Where("seller_id = ?", sellerID)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var templates []models.Template
	if err := q.Order("created_at ASC, id ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// Get returns a single template owned by the seller.
func (s *Service) Get(ctx context.Context, sellerID string, id uint) (*models.Template, error) {
	var template models.Template
	err := s.db.WithContext(ctx).
		Where("seller_id = ? AND id = ?", sellerID, id).
		First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// UpdateInput carries the updatable fields of a template. Nil fields are
// left unchanged.
type UpdateInput struct {
	Category *string `json:"category"`
	Title    *string `json:"title"`
	Body     *string `json:"body"`
}

// Update modifies a template owned by the seller.
func (s *Service) Update(ctx context.Context, sellerID string, id uint, in UpdateInput) (*models.Template, error) {
	template, err := s.Get(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Category != nil {
		if !models.ValidCategory(*in.Category) {
			return nil, fmt.Errorf("unknown category %q", *in.Category)
		}
		updates["category"] = *in.Category
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("title is required")
		}
		updates["title"] = *in.Title
	}
	if in.Body != nil {
		if *in.Body == "" {
			return nil, fmt.Errorf("body is required")
		}
		updates["body"] = *in.Body
	}
	if len(updates) == 0 {
		return template, nil
	}

	if err := s.db.WithContext(ctx).Model(template).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return template, nil
}

// Delete removes a template owned by the seller.
func (s *Service) Delete(ctx context.Context, sellerID string, id uint) error {
	res := s.db.WithContext(ctx).
		Where("seller_id = ? AND id = ?", sellerID, id).
		Delete(&models.Template{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete template: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
