package reconcile

import (
	depositmodels "deposit-desk/feature/deposits/models"
	ordermodels "deposit-desk/feature/orders/models"
	"deposit-desk/feature/reconcile/engine"
)

// toEngineOrders projects stored orders onto the engine's value type. The
// slice order is the matching sequence, so callers must pass orders in
// creation order.
func toEngineOrders(orders []ordermodels.Order) []engine.Order {
	out := make([]engine.Order, len(orders))
	for i, o := range orders {
		out[i] = engine.Order{
			ID:              o.ID,
			SellerID:        o.SellerID,
			CustomerName:    o.CustomerName,
			TotalAmount:     o.TotalAmount,
			DepositedAmount: o.DepositedAmount,
			DepositorName:   o.DepositorName,
			Status:          engine.Status(o.Status),
		}
	}
	return out
}

// toEngineDeposits projects stored deposits onto the engine's value type,
// preserving arrival order.
func toEngineDeposits(deposits []depositmodels.Deposit) []engine.Deposit {
	out := make([]engine.Deposit, len(deposits))
	for i, d := range deposits {
		out[i] = engine.Deposit{
			ID:            d.ID,
			DepositorName: d.DepositorName,
			Amount:        d.Amount,
			Date:          d.Date,
		}
	}
	return out
}
