package deposits

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"time"

	"deposit-desk/core/money"
	"deposit-desk/core/storage"
	"deposit-desk/feature/deposits/models"
	"deposit-desk/feature/deposits/recognition"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// evidencePrefix is the storage prefix for uploaded transfer screenshots.
const evidencePrefix = "evidence"

// Service handles the deposit pool.
type Service struct {
	db         *gorm.DB
	client     storage.Client
	bucket     string
	recognizer recognition.Client
	logger     *zap.Logger
}

// NewService creates a new deposits service.
func NewService(db *gorm.DB, client storage.Client, bucket string, recognizer recognition.Client, logger *zap.Logger) *Service {
	return &Service{
		db:         db,
		client:     client,
		bucket:     bucket,
		recognizer: recognizer,
		logger:     logger,
	}
}

// CreateInput carries a manually recorded deposit.
type CreateInput struct {
	DepositorName string    `json:"depositor_name"`
	Amount        int       `json:"amount"`
	Date          time.Time `json:"date"`
}

// Create records a deposit entered by hand.
func (s *Service) Create(ctx context.Context, sellerID string, in CreateInput) (*models.Deposit, error) {
	return s.insert(ctx, sellerID, in.DepositorName, in.Amount, in.Date, models.SourceManual, "")
}

// List returns the seller's deposit pool in arrival order. That order is
// what the reconciliation pass scans, so it must be stable.
func (s *Service) List(ctx context.Context, sellerID string) ([]models.Deposit, error) {
	var deposits []models.Deposit
	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at ASC, id ASC").
		Find(&deposits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	return deposits, nil
}

// CreateFromImage stores the screenshot as evidence, asks the recognition
// service for the {depositor, amount} pair, and only then records the
// deposit. On recognition failure the evidence object is removed and no
// deposit enters the pool.
func (s *Service) CreateFromImage(ctx context.Context, sellerID, filename string, image []byte) (*models.Deposit, error) {
	objectName := fmt.Sprintf("%s/%s%s", evidencePrefix, uuid.NewString(), path.Ext(filename))

	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(image), int64(len(image)), minio.PutObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to store evidence: %w", err)
	}

	candidate, err := s.recognizer.RecognizeImage(ctx, filename, image)
	if err != nil {
		// Best-effort cleanup; the recognition failure is what the
		// caller needs to see.
		if rmErr := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); rmErr != nil {
			s.logger.Warn("Failed to remove orphaned evidence",
				zap.String("object", objectName), zap.Error(rmErr))
		}
		return nil, fmt.Errorf("recognition failed: %w", err)
	}

	return s.insert(ctx, sellerID, candidate.DepositorName, candidate.Amount,
		time.Now(), models.SourceRecognition, objectName)
}

// CreateFromText asks the recognition service to parse a free-text transfer
// notice and records the resulting deposit.
func (s *Service) CreateFromText(ctx context.Context, sellerID, text string) (*models.Deposit, error) {
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}

	candidate, err := s.recognizer.RecognizeText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("recognition failed: %w", err)
	}

	return s.insert(ctx, sellerID, candidate.DepositorName, candidate.Amount,
		time.Now(), models.SourceRecognition, "")
}

// ExportCSV writes the seller's deposit pool as CSV in arrival order.
func (s *Service) ExportCSV(ctx context.Context, sellerID string, w io.Writer) error {
	deposits, err := s.List(ctx, sellerID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"deposit_id", "depositor_name", "amount", "date", "source"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, d := range deposits {
		row := []string{
			d.ID,
			d.DepositorName,
			money.FormatKRW(d.Amount),
			d.Date.Format("2006-01-02"),
			d.Source,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func (s *Service) insert(ctx context.Context, sellerID, depositorName string, amount int, date time.Time, source, evidenceObject string) (*models.Deposit, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("seller id is required")
	}
	if depositorName == "" {
		return nil, fmt.Errorf("depositor name is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %d", amount)
	}
	if date.IsZero() {
		date = time.Now()
	}

	deposit := &models.Deposit{
		ID:             uuid.NewString(),
		SellerID:       sellerID,
		DepositorName:  depositorName,
		Amount:         amount,
		Date:           date,
		Source:         source,
		EvidenceObject: evidenceObject,
	}

	if err := s.db.WithContext(ctx).Create(deposit).Error; err != nil {
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}

	s.logger.Info("Deposit recorded",
		zap.String("deposit_id", deposit.ID),
		zap.String("seller_id", sellerID),
		zap.String("source", source),
		zap.Int("amount", amount),
	)
	return deposit, nil
}
