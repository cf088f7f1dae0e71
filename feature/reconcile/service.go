package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	depositmodels "deposit-desk/feature/deposits/models"
	ordermodels "deposit-desk/feature/orders/models"
	"deposit-desk/feature/reconcile/engine"
	"deposit-desk/feature/reconcile/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Service runs reconciliation passes against the stored orders and deposit
// pool and persists committed outcomes.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger

	// previews collapses concurrent preview requests for the same seller
	// into one computation.
	previews singleflight.Group

	// mu guards sellers; each seller gets its own commit lock so one
	// seller's pass never blocks another's.
	mu      sync.Mutex
	sellers map[string]*sync.Mutex
}

// NewService creates a new reconcile service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		logger:  logger,
		sellers: make(map[string]*sync.Mutex),
	}
}

func (s *Service) sellerLock(sellerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.sellers[sellerID]
	if !ok {
		l = &sync.Mutex{}
		s.sellers[sellerID] = l
	}
	return l
}

// load fetches the seller's orders in creation order and the deposit pool in
// arrival order, projected onto the engine's types.
func (s *Service) load(ctx context.Context, db *gorm.DB, sellerID string) ([]engine.Order, []engine.Deposit, error) {
	var orders []ordermodels.Order
	err := db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load orders: %w", err)
	}

	var deposits []depositmodels.Deposit
	err = db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at ASC, id ASC").
		Find(&deposits).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load deposits: %w", err)
	}

	return toEngineOrders(orders), toEngineDeposits(deposits), nil
}

// Preview computes a reconciliation pass without touching any stored data.
func (s *Service) Preview(ctx context.Context, sellerID string) (*engine.Result, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("seller id is required")
	}

	v, err, _ := s.previews.Do(sellerID, func() (interface{}, error) {
		orders, deposits, err := s.load(ctx, s.db, sellerID)
		if err != nil {
			return nil, err
		}
		return engine.Run(orders, deposits)
	})
	if err != nil {
		return nil, err
	}
	return v.(*engine.Result), nil
}

// Run computes a reconciliation pass and commits the outcome in one
// transaction: matched orders are updated, consumed deposits are removed
// from the pool and a run record is written. Passes for the same seller are
// serialized; a pass matching nothing still records a run.
func (s *Service) Run(ctx context.Context, sellerID string) (*models.Run, *engine.Result, error) {
	if sellerID == "" {
		return nil, nil, fmt.Errorf("seller id is required")
	}

	lock := s.sellerLock(sellerID)
	lock.Lock()
	defer lock.Unlock()

	var (
		run    *models.Run
		result *engine.Result
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders, deposits, err := s.load(ctx, tx, sellerID)
		if err != nil {
			return err
		}

		result, err = engine.Run(orders, deposits)
		if err != nil {
			return err
		}

		matchedBy := make(map[string]engine.Match, len(result.Matches))
		for _, m := range result.Matches {
			matchedBy[m.OrderID] = m
		}

		for _, o := range result.Orders {
			m, ok := matchedBy[o.ID]
			if !ok {
				continue
			}
			err := tx.Model(&ordermodels.Order{}).
				Where("id = ? AND seller_id = ?", o.ID, sellerID).
				Updates(map[string]interface{}{
					"status":           string(o.Status),
					"deposited_amount": o.DepositedAmount,
					"depositor_name":   o.DepositorName,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to settle order %s: %w", o.ID, err)
			}

			err = tx.Where("id = ? AND seller_id = ?", m.DepositID, sellerID).
				Delete(&depositmodels.Deposit{}).Error
			if err != nil {
				return fmt.Errorf("failed to consume deposit %s: %w", m.DepositID, err)
			}
		}

		matches, err := json.Marshal(result.Matches)
		if err != nil {
			return fmt.Errorf("failed to encode matches: %w", err)
		}

		run = &models.Run{
			ID:            uuid.NewString(),
			SellerID:      sellerID,
			Orders:        result.Summary.Orders,
			OpenBefore:    result.Summary.OpenBefore,
			OpenAfter:     result.Summary.OpenAfter,
			Deposits:      result.Summary.Deposits,
			Matched:       result.Summary.Matched,
			Residual:      result.Summary.Residual,
			MatchedAmount: result.Summary.MatchedAmount,
			Matches:       string(matches),
		}
		if err := tx.Create(run).Error; err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Reconciliation committed",
		zap.String("run_id", run.ID),
		zap.String("seller_id", sellerID),
		zap.Int("matched", run.Matched),
		zap.Int("residual", run.Residual),
		zap.Int("matched_amount", run.MatchedAmount),
	)
	return run, result, nil
}

// Runs returns the seller's run history, newest first.
func (s *Service) Runs(ctx context.Context, sellerID string) ([]models.Run, error) {
	var runs []models.Run
	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC, id DESC").
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
