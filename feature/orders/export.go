package orders

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"deposit-desk/core/money"

	"go.uber.org/zap"
)

// ExportCSV writes the seller's orders as CSV, one row per order, in the
// same sequence List returns. This is the human-consumption export surface;
// the reconciliation pass has no dependency on it.
func (s *Service) ExportCSV(ctx context.Context, sellerID string, w io.Writer) error {
	orders, err := s.List(ctx, sellerID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"order_id", "customer_name", "total_amount", "deposited_amount", "depositor_name", "status", "order_date"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, o := range orders {
		row := []string{
			o.ID,
			o.CustomerName,
			money.FormatKRW(o.TotalAmount),
			money.FormatKRW(o.DepositedAmount),
			o.DepositorName,
			o.Status,
			o.OrderDate.Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	s.logger.Info("Orders exported",
		zap.String("seller_id", sellerID),
		zap.Int("rows", len(orders)),
	)
	return nil
}
