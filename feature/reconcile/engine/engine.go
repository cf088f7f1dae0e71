package engine

// Run performs one reconciliation pass over the given orders and deposit
// pool. It is pure: the input slices are never mutated and the pass performs
// no I/O, so it either returns a fully valid Result or a validation error
// with nothing changed.
//
// The pass is greedy and order-sequence-primary: orders are visited in their
// existing sequence, and each open order takes the first deposit (by pool
// position) whose depositor name equals the customer name exactly and whose
// amount covers the full order total. A matched deposit is consumed
// immediately and cannot settle a later order. A deposit below the total is
// never accepted, even partially.
//
// Deposits are indexed by depositor name with arrival order preserved inside
// each name group; since matching requires exact name equality, the first
// sufficient deposit within a group is also the first in pool order, so the
// index changes the running time (near O(orders+deposits)) but not a single
// match.
func Run(orders []Order, deposits []Deposit) (*Result, error) {
	if err := validate(orders, deposits); err != nil {
		return nil, err
	}

	out := make([]Order, len(orders))
	copy(out, orders)

	byName := make(map[string][]int, len(deposits))
	for i, d := range deposits {
		byName[d.DepositorName] = append(byName[d.DepositorName], i)
	}
	consumed := make([]bool, len(deposits))

	var (
		matches    []Match
		openBefore int
	)

	for i := range out {
		order := &out[i]
		if !order.Open() {
			continue
		}
		openBefore++

		for _, j := range byName[order.CustomerName] {
			if consumed[j] || deposits[j].Amount < order.TotalAmount {
				continue
			}

			d := deposits[j]
			order.Status = StatusPaid
			order.DepositedAmount = d.Amount
			order.DepositorName = d.DepositorName
			consumed[j] = true

			matches = append(matches, Match{
				OrderID:   order.ID,
				DepositID: d.ID,
				Amount:    d.Amount,
			})
			break
		}
	}

	residual := make([]Deposit, 0, len(deposits)-len(matches))
	for j, d := range deposits {
		if !consumed[j] {
			residual = append(residual, d)
		}
	}

	summary := Summary{
		Orders:     len(out),
		OpenBefore: openBefore,
		OpenAfter:  openBefore - len(matches),
		Deposits:   len(deposits),
		Matched:    len(matches),
		Residual:   len(residual),
	}
	for _, m := range matches {
		summary.MatchedAmount += m.Amount
	}

	return &Result{
		Orders:   out,
		Deposits: residual,
		Matches:  matches,
		Summary:  summary,
	}, nil
}
