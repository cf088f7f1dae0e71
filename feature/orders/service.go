package orders

import (
	"context"
	"fmt"
	"time"

	"deposit-desk/feature/orders/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles order management.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new orders service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CreateInput carries the fields of a new order. Orders always enter the
// system PENDING; payment fields belong to the reconcile feature.
type CreateInput struct {
	CustomerName string     `json:"customer_name"`
	TotalAmount  int        `json:"total_amount"`
	OrderDate    time.Time  `json:"order_date"`
	Contact      string     `json:"contact"`
	Address      string     `json:"address"`
	Items        []ItemSpec `json:"items"`
}

// ItemSpec names one product position of an order.
type ItemSpec struct {
	ProductID uint `json:"product_id"`
	Qty       int  `json:"qty"`
}

// Create stores a new PENDING order for the seller.
func (s *Service) Create(ctx context.Context, sellerID string, in CreateInput) (*models.Order, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("seller id is required")
	}
	if in.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if in.TotalAmount < 0 {
		return nil, fmt.Errorf("total amount must not be negative")
	}

	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &models.Order{
		ID:           uuid.NewString(),
		SellerID:     sellerID,
		CustomerName: in.CustomerName,
		TotalAmount:  in.TotalAmount,
		Status:       models.StatusPending,
		OrderDate:    orderDate,
		Contact:      in.Contact,
		Address:      in.Address,
	}
	for _, item := range in.Items {
		qty := item.Qty
		if qty <= 0 {
			qty = 1
		}
		order.Items = append(order.Items, models.OrderItem{ProductID: item.ProductID, Qty: qty})
	}

	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("seller_id", sellerID),
		zap.Int("total_amount", order.TotalAmount),
	)
	return order, nil
}

// List returns the seller's orders in creation sequence. That sequence is
// the tie-break priority of the reconciliation pass, so it must be stable.
func (s *Service) List(ctx context.Context, sellerID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at ASC, id ASC").
		Preload("Items").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Get returns a single order owned by the seller.
func (s *Service) Get(ctx context.Context, sellerID, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Where("seller_id = ? AND id = ?", sellerID, orderID).
		Preload("Items").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}
