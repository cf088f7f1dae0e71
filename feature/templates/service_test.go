package templates_test

import (
	"context"
	"errors"
	"testing"

	"deposit-desk/core/database"
	"deposit-desk/feature/templates"
	"deposit-desk/feature/templates/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *templates.Service {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Template{}))
	return templates.NewService(db, zap.NewNop())
}

func TestService_Create(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	template, err := svc.Create(ctx, "seller01", templates.CreateInput{
		Category: models.CategoryGreeting,
		Title:    "방송 시작 인사",
		Body:     "안녕하세요! 오늘도 찾아주셔서 감사합니다.",
	})
	require.NoError(t, err)
	assert.NotZero(t, template.ID)
	assert.Equal(t, models.CategoryGreeting, template.Category)
}

func TestService_Create_RejectsUnknownCategory(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), "seller01", templates.CreateInput{
		Category: "smalltalk",
		Title:    "잡담",
		Body:     "...",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smalltalk")
}

func TestService_List_CategoryFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seeds := []templates.CreateInput{
		{Category: models.CategoryGreeting, Title: "인사", Body: "안녕하세요!"},
		{Category: models.CategoryPriceQuery, Title: "가격 안내", Body: "가격은 고정입니다."},
		{Category: models.CategoryPriceQuery, Title: "할인 안내", Body: "할인은 없습니다."},
	}
	for _, in := range seeds {
		_, err := svc.Create(ctx, "seller01", in)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, "seller01", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	priced, err := svc.List(ctx, "seller01", models.CategoryPriceQuery)
	require.NoError(t, err)
	assert.Len(t, priced, 2)

	_, err = svc.List(ctx, "seller01", "bogus")
	assert.Error(t, err)
}

func TestService_UpdateAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	template, err := svc.Create(ctx, "seller01", templates.CreateInput{
		Category: models.CategoryClosing,
		Title:    "마무리 인사",
		Body:     "오늘 방송 여기까지입니다.",
	})
	require.NoError(t, err)

	body := "오늘 방송 여기까지! 내일 또 만나요."
	updated, err := svc.Update(ctx, "seller01", template.ID, templates.UpdateInput{Body: &body})
	require.NoError(t, err)
	assert.Equal(t, body, updated.Body)

	bad := "smalltalk"
	_, err = svc.Update(ctx, "seller01", template.ID, templates.UpdateInput{Category: &bad})
	assert.Error(t, err)

	require.NoError(t, svc.Delete(ctx, "seller01", template.ID))
	_, err = svc.Get(ctx, "seller01", template.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCategories_Fixed(t *testing.T) {
	assert.Len(t, models.Categories(), 7)
	assert.True(t, models.ValidCategory(models.CategoryOutOfStock))
	assert.False(t, models.ValidCategory("GREETING"))
	assert.False(t, models.ValidCategory(""))
}
