package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"deposit-desk/feature/reconcile/engine"
)

// Replays the matching pass over a fixed scenario: an exact match, an
// overpay, an underpay and a duplicate customer name. Useful when checking
// a rule change by eye without a database.
func main() {
	day := time.Date(2024, 7, 28, 0, 0, 0, 0, time.UTC)

	orders := []engine.Order{
		{ID: "ord-1", CustomerName: "김민준", TotalAmount: 59000, Status: engine.StatusPending},
		{ID: "ord-2", CustomerName: "이서아", TotalAmount: 85000, Status: engine.StatusPending},
		{ID: "ord-3", CustomerName: "이서아", TotalAmount: 42000, Status: engine.StatusPending},
		{ID: "ord-4", CustomerName: "박도윤", TotalAmount: 129000, Status: engine.StatusPending},
		{ID: "ord-5", CustomerName: "최은우", TotalAmount: 185000, Status: engine.StatusPending},
	}

	deposits := []engine.Deposit{
		{ID: "dep-1", DepositorName: "김민준", Amount: 59000, Date: day},
		{ID: "dep-2", DepositorName: "이서아", Amount: 85000, Date: day},
		{ID: "dep-3", DepositorName: "박도윤", Amount: 100000, Date: day},
		{ID: "dep-4", DepositorName: "최은우", Amount: 200000, Date: day},
	}

	result, err := engine.Run(orders, deposits)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== SUMMARY ===")
	printJSON(result.Summary)

	fmt.Println("=== MATCHES ===")
	for _, m := range result.Matches {
		fmt.Printf("%s <- %s (%d)\n", m.OrderID, m.DepositID, m.Amount)
	}

	fmt.Println("=== ORDERS AFTER ===")
	for _, o := range result.Orders {
		fmt.Printf("%s %s %s total=%d deposited=%d\n",
			o.ID, o.CustomerName, o.Status, o.TotalAmount, o.DepositedAmount)
	}

	fmt.Println("=== RESIDUAL POOL ===")
	for _, d := range result.Deposits {
		fmt.Printf("%s %s %d\n", d.ID, d.DepositorName, d.Amount)
	}
}

func printJSON(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(b))
}
