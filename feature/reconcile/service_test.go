package reconcile_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"deposit-desk/core/database"
	depositmodels "deposit-desk/feature/deposits/models"
	ordermodels "deposit-desk/feature/orders/models"
	"deposit-desk/feature/reconcile"
	"deposit-desk/feature/reconcile/engine"
	"deposit-desk/feature/reconcile/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&ordermodels.Order{}, &ordermodels.OrderItem{},
		&depositmodels.Deposit{}, &models.Run{},
	))
	return db
}

var seedClock = time.Date(2024, 7, 28, 9, 0, 0, 0, time.UTC)

func seedOrder(t *testing.T, db *gorm.DB, seller, customer string, total int, seq int) *ordermodels.Order {
	t.Helper()
	order := &ordermodels.Order{
		ID:           uuid.NewString(),
		SellerID:     seller,
		CustomerName: customer,
		TotalAmount:  total,
		Status:       ordermodels.StatusPending,
		OrderDate:    seedClock,
		CreatedAt:    seedClock.Add(time.Duration(seq) * time.Second),
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func seedDeposit(t *testing.T, db *gorm.DB, seller, name string, amount int, seq int) *depositmodels.Deposit {
	t.Helper()
	deposit := &depositmodels.Deposit{
		ID:            uuid.NewString(),
		SellerID:      seller,
		DepositorName: name,
		Amount:        amount,
		Date:          seedClock,
		Source:        depositmodels.SourceManual,
		CreatedAt:     seedClock.Add(time.Duration(seq) * time.Second),
	}
	require.NoError(t, db.Create(deposit).Error)
	return deposit
}

func TestService_Run_CommitsOutcome(t *testing.T) {
	db := newTestDB(t)
	svc := reconcile.NewService(db, zap.NewNop())
	ctx := context.Background()

	kim := seedOrder(t, db, "seller01", "김민준", 59000, 0)
	choi := seedOrder(t, db, "seller01", "최은우", 185000, 1)
	park := seedOrder(t, db, "seller01", "박도윤", 129000, 2)

	seedDeposit(t, db, "seller01", "김민준", 59000, 0)
	overpay := seedDeposit(t, db, "seller01", "최은우", 200000, 1)
	seedDeposit(t, db, "seller01", "박도윤", 100000, 2)

	run, result, err := svc.Run(ctx, "seller01")
	require.NoError(t, err)
	require.NotNil(t, run)

	assert.Equal(t, 3, run.Orders)
	assert.Equal(t, 2, run.Matched)
	assert.Equal(t, 1, run.Residual)
	assert.Equal(t, 1, run.OpenAfter)
	assert.Equal(t, 259000, run.MatchedAmount)
	assert.Len(t, result.Matches, 2)

	var stored ordermodels.Order
	require.NoError(t, db.First(&stored, "id = ?", kim.ID).Error)
	assert.Equal(t, ordermodels.StatusPaid, stored.Status)
	assert.Equal(t, 59000, stored.DepositedAmount)
	assert.Equal(t, "김민준", stored.DepositorName)

	// Overpay is credited in full.
	stored = ordermodels.Order{}
	require.NoError(t, db.First(&stored, "id = ?", choi.ID).Error)
	assert.Equal(t, ordermodels.StatusPaid, stored.Status)
	assert.Equal(t, overpay.Amount, stored.DepositedAmount)

	// The underpaying deposit settles nothing and stays in the pool.
	stored = ordermodels.Order{}
	require.NoError(t, db.First(&stored, "id = ?", park.ID).Error)
	assert.Equal(t, ordermodels.StatusPending, stored.Status)

	var pool []depositmodels.Deposit
	require.NoError(t, db.Find(&pool, "seller_id = ?", "seller01").Error)
	require.Len(t, pool, 1)
	assert.Equal(t, "박도윤", pool[0].DepositorName)
}

func TestService_Run_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := reconcile.NewService(db, zap.NewNop())
	ctx := context.Background()

	seedOrder(t, db, "seller01", "이서아", 85000, 0)
	seedDeposit(t, db, "seller01", "이서아", 85000, 0)

	first, _, err := svc.Run(ctx, "seller01")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Matched)

	second, _, err := svc.Run(ctx, "seller01")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Matched)
	assert.Equal(t, 0, second.Deposits)
	assert.Equal(t, 0, second.OpenBefore)

	runs, err := svc.Runs(ctx, "seller01")
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestService_Run_SellerIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := reconcile.NewService(db, zap.NewNop())
	ctx := context.Background()

	seedOrder(t, db, "seller01", "강지후", 45000, 0)
	other := seedDeposit(t, db, "seller02", "강지후", 45000, 0)

	run, _, err := svc.Run(ctx, "seller01")
	require.NoError(t, err)
	assert.Equal(t, 0, run.Matched)

	// The other seller's deposit is untouched.
	var stored depositmodels.Deposit
	require.NoError(t, db.First(&stored, "id = ?", other.ID).Error)
}

func TestService_Run_RejectsInvalidData(t *testing.T) {
	db := newTestDB(t)
	svc := reconcile.NewService(db, zap.NewNop())
	ctx := context.Background()

	order := seedOrder(t, db, "seller01", "박서준", 72000, 0)
	bad := seedDeposit(t, db, "seller01", "박서준", 72000, 1)
	require.NoError(t, db.Model(bad).Update("amount", -72000).Error)
	seedDeposit(t, db, "seller01", "박서준", 72000, 2)

	_, _, err := svc.Run(ctx, "seller01")
	require.Error(t, err)

	var verr *engine.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "deposit", verr.Record)
	assert.Equal(t, bad.ID, verr.ID)

	// Nothing was committed.
	var stored ordermodels.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, ordermodels.StatusPending, stored.Status)

	runs, err := svc.Runs(ctx, "seller01")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestService_Run_RecordsMatchesJSON(t *testing.T) {
	db := newTestDB(t)
	svc := reconcile.NewService(db, zap.NewNop())
	ctx := context.Background()

	order := seedOrder(t, db, "seller01", "김민준", 59000, 0)
	deposit := seedDeposit(t, db, "seller01", "김민준", 59000, 0)

	run, _, err := svc.Run(ctx, "seller01")
	require.NoError(t, err)

	var stored models.Run
	require.NoError(t, db.First(&stored, "id = ?", run.ID).Error)

	var matches []engine.Match
	require.NoError(t, json.Unmarshal([]byte(stored.Matches), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, order.ID, matches[0].OrderID)
	assert.Equal(t, deposit.ID, matches[0].DepositID)
}

func TestService_Preview_CommitsNothing(t *testing.T) {
	db := newTestDB(t)
	svc := reconcile.NewService(db, zap.NewNop())
	ctx := context.Background()

	order := seedOrder(t, db, "seller01", "이서아", 85000, 0)
	seedDeposit(t, db, "seller01", "이서아", 85000, 0)

	result, err := svc.Preview(ctx, "seller01")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.Matched)

	var stored ordermodels.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, ordermodels.StatusPending, stored.Status)

	var pool []depositmodels.Deposit
	require.NoError(t, db.Find(&pool, "seller_id = ?", "seller01").Error)
	assert.Len(t, pool, 1)

	runs, err := svc.Runs(ctx, "seller01")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestService_Run_ConcurrentSameSeller(t *testing.T) {
	db := newTestDB(t)
	svc := reconcile.NewService(db, zap.NewNop())
	ctx := context.Background()

	seedOrder(t, db, "seller01", "최은우", 185000, 0)
	seedDeposit(t, db, "seller01", "최은우", 185000, 0)

	const workers = 4
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, _, err := svc.Run(ctx, "seller01")
			errs <- err
		}()
	}
	for i := 0; i < workers; i++ {
		require.NoError(t, <-errs)
	}

	// Exactly one pass consumed the deposit; the rest matched nothing.
	runs, err := svc.Runs(ctx, "seller01")
	require.NoError(t, err)
	require.Len(t, runs, workers)

	matched := 0
	for _, r := range runs {
		matched += r.Matched
	}
	assert.Equal(t, 1, matched)
}

func TestService_Runs_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := reconcile.NewService(db, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedOrder(t, db, "seller01", fmt.Sprintf("고객%d", i), 10000, i)
		seedDeposit(t, db, "seller01", fmt.Sprintf("고객%d", i), 10000, i)
		_, _, err := svc.Run(ctx, "seller01")
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	runs, err := svc.Runs(ctx, "seller01")
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.False(t, runs[0].CreatedAt.Before(runs[1].CreatedAt))
	assert.False(t, runs[1].CreatedAt.Before(runs[2].CreatedAt))
}
