package products_test

import (
	"context"
	"errors"
	"testing"

	"deposit-desk/core/database"
	"deposit-desk/feature/products"
	"deposit-desk/feature/products/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *products.Service {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return products.NewService(db, zap.NewNop())
}

func TestService_CreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, "seller01", products.CreateInput{
		Name:  "핸드메이드 머그컵",
		Price: 15000,
		Stock: 20,
	})
	require.NoError(t, err)
	require.NotZero(t, product.ID)

	got, err := svc.Get(ctx, "seller01", product.ID)
	require.NoError(t, err)
	assert.Equal(t, "핸드메이드 머그컵", got.Name)
	assert.Equal(t, 15000, got.Price)

	// Other sellers cannot see it.
	_, err = svc.Get(ctx, "seller02", product.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		seller string
		input  products.CreateInput
	}{
		{"Missing seller", "", products.CreateInput{Name: "컵", Price: 1000}},
		{"Missing name", "seller01", products.CreateInput{Price: 1000}},
		{"Negative price", "seller01", products.CreateInput{Name: "컵", Price: -1}},
		{"Negative stock", "seller01", products.CreateInput{Name: "컵", Price: 1000, Stock: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := svc.Create(ctx, tt.seller, tt.input)
			assert.Error(t, err)
			assert.Nil(t, product)
		})
	}
}

func TestService_Update(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, "seller01", products.CreateInput{Name: "티셔츠", Price: 25000, Stock: 10})
	require.NoError(t, err)

	price := 22000
	stock := 8
	updated, err := svc.Update(ctx, "seller01", product.ID, products.UpdateInput{Price: &price, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 22000, updated.Price)
	assert.Equal(t, 8, updated.Stock)

	// Name is untouched.
	got, err := svc.Get(ctx, "seller01", product.ID)
	require.NoError(t, err)
	assert.Equal(t, "티셔츠", got.Name)

	bad := -1
	_, err = svc.Update(ctx, "seller01", product.ID, products.UpdateInput{Price: &bad})
	assert.Error(t, err)
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, "seller01", products.CreateInput{Name: "에코백", Price: 12000})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "seller01", product.ID))

	_, err = svc.Get(ctx, "seller01", product.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = svc.Delete(ctx, "seller01", product.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestService_List(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"머그컵", "티셔츠", "에코백"} {
		_, err := svc.Create(ctx, "seller01", products.CreateInput{Name: name, Price: 10000})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, "seller02", products.CreateInput{Name: "다른상품", Price: 5000})
	require.NoError(t, err)

	list, err := svc.List(ctx, "seller01")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "머그컵", list[0].Name)
}
