package engine

import "time"

// Status is the payment state of an order.
type Status string

const (
	// StatusPending means no deposit has been credited yet.
	StatusPending Status = "PENDING"
	// StatusUnderpaid means a partial amount was recorded at order entry.
	// The engine treats it like PENDING: it only leaves via a full match.
	StatusUnderpaid Status = "UNDERPAID"
	// StatusPaid means a single deposit covering the full amount settled
	// the order. PAID orders are never revisited.
	StatusPaid Status = "PAID"
)

// Order is a customer purchase awaiting or having received payment.
type Order struct {
	// ID is the unique order identifier, immutable.
	ID string `json:"id"`

	// SellerID is the owning seller. Used only for scoping by callers,
	// never by the matching logic itself.
	SellerID string `json:"seller_id"`

	// CustomerName is the payer name declared at order time.
	CustomerName string `json:"customer_name"`

	// TotalAmount is the integer won owed, immutable.
	TotalAmount int `json:"total_amount"`

	// DepositedAmount is the integer won actually received so far.
	DepositedAmount int `json:"deposited_amount"`

	// DepositorName is the name on the deposit credited to this order,
	// empty until matched.
	DepositorName string `json:"depositor_name"`

	// Status is derived from the amounts by the engine, never set
	// directly by other components after creation.
	Status Status `json:"status"`
}

// Open reports whether the order is still awaiting a settling deposit.
func (o Order) Open() bool {
	return o.Status == StatusPending || o.Status == StatusUnderpaid
}

// Deposit is a single incoming bank-transfer record.
type Deposit struct {
	// ID is the unique deposit identifier, immutable.
	ID string `json:"id"`

	// DepositorName is the name as it appears on the bank record.
	DepositorName string `json:"depositor_name"`

	// Amount is the integer won received, always positive.
	Amount int `json:"amount"`

	// Date is the date of receipt. Informational; not used in matching.
	Date time.Time `json:"date"`
}
