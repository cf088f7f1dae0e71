package engine

// Match records one settlement: a single deposit paying a single order.
type Match struct {
	// OrderID is the settled order.
	OrderID string `json:"order_id"`

	// DepositID is the consumed deposit.
	DepositID string `json:"deposit_id"`

	// Amount is the full deposit amount credited, which may exceed the
	// order total (overpay is accepted, no change is modeled).
	Amount int `json:"amount"`
}

// Summary provides aggregate counts for a reconciliation pass.
type Summary struct {
	// Orders is the total number of orders examined.
	Orders int `json:"orders"`

	// OpenBefore counts orders that entered the pass PENDING or UNDERPAID.
	OpenBefore int `json:"open_before"`

	// OpenAfter counts orders still PENDING or UNDERPAID after the pass.
	OpenAfter int `json:"open_after"`

	// Deposits is the size of the deposit pool before the pass.
	Deposits int `json:"deposits"`

	// Matched counts deposits consumed by the pass.
	Matched int `json:"matched"`

	// Residual counts deposits left unmatched in the pool.
	Residual int `json:"residual"`

	// MatchedAmount is the total won credited by the pass.
	MatchedAmount int `json:"matched_amount"`
}

// Result is the outcome of one reconciliation pass.
type Result struct {
	// Orders is the full order sequence after the pass. Same cardinality,
	// identity set and sequence as the input.
	Orders []Order `json:"orders"`

	// Deposits is the residual pool: input order preserved, consumed
	// entries removed.
	Deposits []Deposit `json:"deposits"`

	// Matches lists each settlement produced by the pass.
	Matches []Match `json:"matches"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}
