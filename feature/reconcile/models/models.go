package models

import "time"

// Run is the persisted record of one committed reconciliation pass.
// Preview passes are never recorded.
type Run struct {
	ID            string `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	SellerID      string `gorm:"column:seller_id;type:varchar(36);index" json:"seller_id"`
	Orders        int    `gorm:"column:orders" json:"orders"`
	OpenBefore    int    `gorm:"column:open_before" json:"open_before"`
	OpenAfter     int    `gorm:"column:open_after" json:"open_after"`
	Deposits      int    `gorm:"column:deposits" json:"deposits"`
	Matched       int    `gorm:"column:matched" json:"matched"`
	Residual      int    `gorm:"column:residual" json:"residual"`
	MatchedAmount int    `gorm:"column:matched_amount" json:"matched_amount"`
	// Matches holds the JSON-encoded settlement list of the pass, kept
	// for audit since the consumed deposit rows are deleted on commit.
	Matches   string    `gorm:"column:matches;type:text" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Run) TableName() string {
	return "reconcile_runs"
}

// Columns lists the run table columns the schema check verifies after
// migration.
func Columns() []string {
	return []string{
		"id", "seller_id", "orders", "open_before", "open_after",
		"deposits", "matched", "residual", "matched_amount", "matches",
	}
}
