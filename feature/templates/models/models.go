package models

import "time"

// Template categories. The set is fixed; a template outside it is rejected.
const (
	CategoryGreeting       = "greeting"
	CategoryPriceQuery     = "price_query"
	CategoryOrderForm      = "order_form"
	CategoryOutOfStock     = "out_of_stock"
	CategoryShippingInfo   = "shipping_info"
	CategoryProductDetails = "product_details"
	CategoryClosing        = "closing"
)

// Categories lists the valid template categories in display order.
func Categories() []string {
	return []string{
		CategoryGreeting,
		CategoryPriceQuery,
		CategoryOrderForm,
		CategoryOutOfStock,
		CategoryShippingInfo,
		CategoryProductDetails,
		CategoryClosing,
	}
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Template is a canned chat reply sellers paste during live streams.
type Template struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	SellerID  string    `gorm:"column:seller_id;type:varchar(36);index" json:"seller_id"`
	Category  string    `gorm:"column:category;type:varchar(32);index" json:"category"`
	Title     string    `gorm:"column:title;type:varchar(100)" json:"title"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Template) TableName() string {
	return "templates"
}

// Columns lists the template table columns the schema check verifies after
// migration.
func Columns() []string {
	return []string{"id", "seller_id", "category", "title", "body"}
}
