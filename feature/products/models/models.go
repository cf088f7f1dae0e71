package models

import "time"

// Product is a catalog item sellers pitch during live streams. Order items
// reference products by ID.
type Product struct {
	ID          uint      `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	SellerID    string    `gorm:"column:seller_id;type:varchar(36);index" json:"seller_id"`
	Name        string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Price       int       `gorm:"column:price" json:"price"`
	Stock       int       `gorm:"column:stock;default:0" json:"stock"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(255)" json:"image_url,omitempty"`
	Description string    `gorm:"column:description;type:varchar(500)" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// Columns lists the product table columns the schema check verifies after
// migration.
func Columns() []string {
	return []string{"id", "seller_id", "name", "price", "stock"}
}
