package products

import (
	"context"
	"fmt"

	"deposit-desk/feature/products/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles the product catalog.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new products service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CreateInput carries the fields of a new product.
type CreateInput struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// Create stores a new product for the seller.
func (s *Service) Create(ctx context.Context, sellerID string, in CreateInput) (*models.Product, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("seller id is required")
	}
	if in.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("stock must not be negative")
	}

	product := &models.Product{
		SellerID:    sellerID,
		Name:        in.Name,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	}
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("seller_id", sellerID),
		zap.String("name", product.Name),
	)
	return product, nil
}

// List returns the seller's catalog.
func (s *Service) List(ctx context.Context, sellerID string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at ASC, id ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get returns a single product owned by the seller.
func (s *Service) Get(ctx context.Context, sellerID string, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Where("seller_id = ? AND id = ?", sellerID, id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateInput carries the updatable fields of a product. Nil fields are
// left unchanged.
type UpdateInput struct {
	Name        *string `json:"name"`
	Price       *int    `json:"price"`
	Stock       *int    `json:"stock"`
	ImageURL    *string `json:"image_url"`
	Description *string `json:"description"`
}

// Update modifies a product owned by the seller.
func (s *Service) Update(ctx context.Context, sellerID string, id uint, in UpdateInput) (*models.Product, error) {
	product, err := s.Get(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("product name is required")
		}
		updates["name"] = *in.Name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("price must not be negative")
		}
		updates["price"] = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, fmt.Errorf("stock must not be negative")
		}
		updates["stock"] = *in.Stock
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if len(updates) == 0 {
		return product, nil
	}

	err = s.db.WithContext(ctx).Model(product).Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// Delete removes a product owned by the seller.
func (s *Service) Delete(ctx context.Context, sellerID string, id uint) error {
	res := s.db.WithContext(ctx).
		Where("seller_id = ? AND id = ?", sellerID, id).
		Delete(&models.Product{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.logger.Info("Product deleted",
		zap.Uint("product_id", id),
		zap.String("seller_id", sellerID),
	)
	return nil
}
