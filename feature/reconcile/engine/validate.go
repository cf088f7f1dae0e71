package engine

import "fmt"

// ValidationError reports a malformed input record. The pass rejects the
// whole input before any matching; a validation failure never produces a
// partial result.
type ValidationError struct {
	// Record is "order" or "deposit".
	Record string
	// ID identifies the offending record.
	ID string
	// Field is the field that failed validation.
	Field string
	// Value is the rejected value.
	Value int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s = %d", e.Record, e.ID, e.Field, e.Value)
}

// validate checks amount fields before the pass. Negative order amounts and
// non-positive deposit amounts are caller contract violations, reported as
// a distinct error rather than folded into "no match".
func validate(orders []Order, deposits []Deposit) error {
	for _, o := range orders {
		if o.TotalAmount < 0 {
			return &ValidationError{Record: "order", ID: o.ID, Field: "total_amount", Value: o.TotalAmount}
		}
		if o.DepositedAmount < 0 {
			return &ValidationError{Record: "order", ID: o.ID, Field: "deposited_amount", Value: o.DepositedAmount}
		}
	}
	for _, d := range deposits {
		if d.Amount <= 0 {
			return &ValidationError{Record: "deposit", ID: d.ID, Field: "amount", Value: d.Amount}
		}
	}
	return nil
}
