package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"deposit-desk/core/config"
	"deposit-desk/core/database"
	"deposit-desk/core/logger"
	"deposit-desk/feature/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileSeller string
	reconcileDryRun bool
	yesConfirm      bool
)

// reconcileCmd runs a reconciliation pass from the command line.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Match the deposit pool against open orders",
	Long: `Reconcile matches a seller's unassigned deposits against open orders.

Each open order takes the first deposit whose depositor name equals the
customer name and whose amount covers the full total. Matched orders become
PAID and consumed deposits leave the pool.

Examples:
  # Preview only (no changes)
  reconcile --seller seller01 --dry-run

  # Commit with interactive confirmation
  reconcile --seller seller01

  # Commit without prompting (non-interactive)
  reconcile --seller seller01 --yes`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileSeller, "seller", "", "Seller ID to reconcile (required)")
	reconcileCmd.Flags().BoolVar(&reconcileDryRun, "dry-run", false, "Preview the pass without committing")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the commit (non-interactive)")
	_ = reconcileCmd.MarkFlagRequired("seller")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
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

	svc := reconcile.NewService(db, l)

	// Step 1: Preview (always runs)
	result, err := svc.Preview(ctx, reconcileSeller)
	if err != nil {
		return fmt.Errorf("failed to preview reconciliation: %w", err)
	}

	s := result.Summary
	l.Info("Reconciliation preview",
		zap.String("seller_id", reconcileSeller),
		zap.Int("orders", s.Orders),
		zap.Int("open_before", s.OpenBefore),
		zap.Int("open_after", s.OpenAfter),
		zap.Int("deposits", s.Deposits),
		zap.Int("matched", s.Matched),
		zap.Int("residual", s.Residual),
		zap.Int("matched_amount", s.MatchedAmount),
	)

	maxShow := 5
	if len(result.Matches) < maxShow {
		maxShow = len(result.Matches)
	}
	for i := 0; i < maxShow; i++ {
		m := result.Matches[i]
		l.Info("Sample match",
			zap.String("order_id", m.OrderID),
			zap.String("deposit_id", m.DepositID),
			zap.Int("amount", m.Amount),
		)
	}
	if len(result.Matches) > maxShow {
		l.Info("Additional matches not shown", zap.Int("count", len(result.Matches)-maxShow))
	}

	if reconcileDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if s.Matched == 0 {
		l.Info("Nothing to match. No changes were made.")
		return nil
	}

	// Step 2: Confirm and commit
	if !confirmCommit() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	run, _, err := svc.Run(ctx, reconcileSeller)
	if err != nil {
		return fmt.Errorf("failed to commit reconciliation: %w", err)
	}

	l.Info("Reconciliation committed",
		zap.String("run_id", run.ID),
		zap.Int("matched", run.Matched),
		zap.Int("residual", run.Residual),
		zap.Int("matched_amount", run.MatchedAmount),
	)
	return nil
}

// confirmCommit prompts the user for confirmation or uses the --yes flag.
func confirmCommit() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\nType 'yes' to commit the matches above: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
