package models

import "time"

// Deposit sources.
const (
	SourceManual      = "manual"
	SourceRecognition = "recognition"
)

// Deposit is a raw incoming bank-transfer record in the pool. Rows are
// removed only by the reconcile feature, when a deposit settles an order.
type Deposit struct {
	ID            string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	SellerID      string    `gorm:"column:seller_id;type:varchar(36);index" json:"seller_id"`
	DepositorName string    `gorm:"column:depositor_name;type:varchar(100)" json:"depositor_name"`
	Amount        int       `gorm:"column:amount" json:"amount"`
	Date          time.Time `gorm:"column:date" json:"date"`
	// Source records how the deposit entered the pool.
	Source string `gorm:"column:source;type:varchar(16);default:manual" json:"source"`
	// EvidenceObject is the storage key of the uploaded screenshot this
	// deposit was recognized from, empty for manual entries.
	EvidenceObject string    `gorm:"column:evidence_object;type:varchar(255);default:''" json:"evidence_object,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Deposit) TableName() string {
	return "deposits"
}

// Columns lists the deposit table columns the schema check verifies after
// migration.
func Columns() []string {
	return []string{"id", "seller_id", "depositor_name", "amount", "date", "source"}
}
