package deposits_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"deposit-desk/core/database"
	"deposit-desk/core/storage/mocks"
	"deposit-desk/feature/deposits"
	"deposit-desk/feature/deposits/models"
	"deposit-desk/feature/deposits/recognition"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeRecognizer lets tests script the recognition outcome.
type fakeRecognizer struct {
	candidate recognition.Candidate
	err       error
}

func (f *fakeRecognizer) RecognizeImage(ctx context.Context, filename string, image []byte) (recognition.Candidate, error) {
	return f.candidate, f.err
}

func (f *fakeRecognizer) RecognizeText(ctx context.Context, text string) (recognition.Candidate, error) {
	return f.candidate, f.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Deposit{}))
	return db
}

func TestService_Create(t *testing.T) {
	svc := deposits.NewService(newTestDB(t), new(mocks.Client), "deposit-evidence", &fakeRecognizer{}, zap.NewNop())
	ctx := context.Background()

	deposit, err := svc.Create(ctx, "seller01", deposits.CreateInput{
		DepositorName: "김민준",
		Amount:        59000,
		Date:          time.Date(2024, 7, 28, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, deposit.ID)
	assert.Equal(t, models.SourceManual, deposit.Source)
	assert.Empty(t, deposit.EvidenceObject)
}

func TestService_Create_Validation(t *testing.T) {
	svc := deposits.NewService(newTestDB(t), new(mocks.Client), "deposit-evidence", &fakeRecognizer{}, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name   string
		seller string
		input  deposits.CreateInput
	}{
		{"Missing seller", "", deposits.CreateInput{DepositorName: "Kim", Amount: 1000}},
		{"Missing name", "seller01", deposits.CreateInput{Amount: 1000}},
		{"Zero amount", "seller01", deposits.CreateInput{DepositorName: "Kim", Amount: 0}},
		{"Negative amount", "seller01", deposits.CreateInput{DepositorName: "Kim", Amount: -500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deposit, err := svc.Create(ctx, tt.seller, tt.input)
			assert.Error(t, err)
			assert.Nil(t, deposit)
		})
	}
}

func TestService_List_ArrivalOrder(t *testing.T) {
	svc := deposits.NewService(newTestDB(t), new(mocks.Client), "deposit-evidence", &fakeRecognizer{}, zap.NewNop())
	ctx := context.Background()

	names := []string{"이서아", "박도윤", "강지후"}
	for _, name := range names {
		_, err := svc.Create(ctx, "seller01", deposits.CreateInput{DepositorName: name, Amount: 10000})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}
	_, err := svc.Create(ctx, "seller02", deposits.CreateInput{DepositorName: "최은우", Amount: 5000})
	require.NoError(t, err)

	list, err := svc.List(ctx, "seller01")
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, name := range names {
		assert.Equal(t, name, list[i].DepositorName)
	}
}

func TestService_CreateFromImage(t *testing.T) {
	store := new(mocks.Client)
	store.On("PutObject", mock.Anything, "deposit-evidence", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	rec := &fakeRecognizer{candidate: recognition.Candidate{DepositorName: "박서준", Amount: 72000}}
	svc := deposits.NewService(newTestDB(t), store, "deposit-evidence", rec, zap.NewNop())

	deposit, err := svc.CreateFromImage(context.Background(), "seller01", "transfer.png", []byte("fake-png"))
	require.NoError(t, err)

	assert.Equal(t, "박서준", deposit.DepositorName)
	assert.Equal(t, 72000, deposit.Amount)
	assert.Equal(t, models.SourceRecognition, deposit.Source)
	assert.True(t, strings.HasPrefix(deposit.EvidenceObject, "evidence/"))
	assert.True(t, strings.HasSuffix(deposit.EvidenceObject, ".png"))
	store.AssertCalled(t, "PutObject", mock.Anything, "deposit-evidence", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateFromImage_RecognitionFails(t *testing.T) {
	store := new(mocks.Client)
	store.On("PutObject", mock.Anything, "deposit-evidence", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	store.On("RemoveObject", mock.Anything, "deposit-evidence", mock.Anything, mock.Anything).
		Return(nil)

	db := newTestDB(t)
	rec := &fakeRecognizer{err: fmt.Errorf("model overloaded")}
	svc := deposits.NewService(db, store, "deposit-evidence", rec, zap.NewNop())

	deposit, err := svc.CreateFromImage(context.Background(), "seller01", "transfer.png", []byte("fake-png"))
	assert.Error(t, err)
	assert.Nil(t, deposit)

	// No partial deposit enters the pool, and the orphaned evidence is
	// cleaned up.
	var count int64
	require.NoError(t, db.Model(&models.Deposit{}).Count(&count).Error)
	assert.Zero(t, count)
	store.AssertCalled(t, "RemoveObject", mock.Anything, "deposit-evidence", mock.Anything, mock.Anything)
}

func TestService_CreateFromText(t *testing.T) {
	rec := &fakeRecognizer{candidate: recognition.Candidate{DepositorName: "김민준", Amount: 59000}}
	svc := deposits.NewService(newTestDB(t), new(mocks.Client), "deposit-evidence", rec, zap.NewNop())

	deposit, err := svc.CreateFromText(context.Background(), "seller01", "김민준 59000원 입금")
	require.NoError(t, err)
	assert.Equal(t, "김민준", deposit.DepositorName)
	assert.Equal(t, 59000, deposit.Amount)
	assert.Empty(t, deposit.EvidenceObject)

	_, err = svc.CreateFromText(context.Background(), "seller01", "")
	assert.Error(t, err)
}

func TestService_ExportCSV(t *testing.T) {
	svc := deposits.NewService(newTestDB(t), new(mocks.Client), "deposit-evidence", &fakeRecognizer{}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, "seller01", deposits.CreateInput{
		DepositorName: "박도윤",
		Amount:        100000,
		Date:          time.Date(2024, 7, 29, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, "seller01", &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "deposit_id,depositor_name,amount,date,source", lines[0])
	assert.Contains(t, lines[1], "박도윤")
	assert.Contains(t, lines[1], "100,000원")
	assert.Contains(t, lines[1], "2024-07-29")
}
