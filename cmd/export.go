package cmd

import (
	"context"
	"fmt"
	"os"

	"deposit-desk/core/config"
	"deposit-desk/core/database"
	"deposit-desk/core/logger"
	"deposit-desk/feature/deposits"
	"deposit-desk/feature/orders"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportSeller string
	exportOutput string
)

// exportCmd is the parent command for CSV exports.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export seller data as CSV",
}

var exportOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Export the seller's orders as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport("orders")
	},
}

var exportDepositsCmd = &cobra.Command{
	Use:   "deposits",
	Short: "Export the seller's deposit pool as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport("deposits")
	},
}

func init() {
	for _, c := range []*cobra.Command{exportOrdersCmd, exportDepositsCmd} {
		c.Flags().StringVar(&exportSeller, "seller", "", "Seller ID to export (required)")
		c.Flags().StringVar(&exportOutput, "output", "", "Output file (default stdout)")
		_ = c.MarkFlagRequired("seller")
		exportCmd.AddCommand(c)
	}
	RootCmd.AddCommand(exportCmd)
}

func runExport(what string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch what {
	case "orders":
		err = orders.NewService(db, l).ExportCSV(ctx, exportSeller, out)
	case "deposits":
		// The export path never touches storage or recognition.
		err = deposits.NewService(db, nil, "", nil, l).ExportCSV(ctx, exportSeller, out)
	}
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", what, err)
	}

	if exportOutput != "" {
		l.Info("Export written",
			zap.String("what", what),
			zap.String("seller_id", exportSeller),
			zap.String("output", exportOutput),
		)
	}
	return nil
}
