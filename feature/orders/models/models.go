package models

import "time"

// Order statuses. The reconcile feature is the only writer of Status after
// creation; orders enter the system PENDING.
const (
	StatusPending   = "PENDING"
	StatusUnderpaid = "UNDERPAID"
	StatusPaid      = "PAID"
)

// Order is a customer purchase taken during a live stream.
type Order struct {
	ID              string      `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	SellerID        string      `gorm:"column:seller_id;type:varchar(36);index" json:"seller_id"`
	CustomerName    string      `gorm:"column:customer_name;type:varchar(100)" json:"customer_name"`
	TotalAmount     int         `gorm:"column:total_amount" json:"total_amount"`
	DepositedAmount int         `gorm:"column:deposited_amount;default:0" json:"deposited_amount"`
	DepositorName   string      `gorm:"column:depositor_name;type:varchar(100);default:''" json:"depositor_name"`
	Status          string      `gorm:"column:status;type:varchar(16);default:PENDING" json:"status"`
	OrderDate       time.Time   `gorm:"column:order_date" json:"order_date"`
	Contact         string      `gorm:"column:contact;type:varchar(40)" json:"contact,omitempty"`
	Address         string      `gorm:"column:address;type:varchar(255)" json:"address,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt       time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// Open reports whether the order still awaits payment.
func (o Order) Open() bool {
	return o.Status == StatusPending || o.Status == StatusUnderpaid
}

// OrderItem links an order to one purchased product.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	OrderID   string `gorm:"column:order_id;type:varchar(36);index" json:"order_id"`
	ProductID uint   `gorm:"column:product_id" json:"product_id"`
	Qty       int    `gorm:"column:qty;default:1" json:"qty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// Columns lists the order table columns the schema check verifies after
// migration.
func Columns() []string {
	return []string{
		"id", "seller_id", "customer_name", "total_amount",
		"deposited_amount", "depositor_name", "status", "order_date",
	}
}
