package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/adsalert/payverify-be/internal/domain"
)

// PostgresStore is the durable implementation of the invoice, attempt,
// command-log and inventory ports. All access goes through GORM with bound
// parameters; nothing here builds SQL strings from input.
type PostgresStore struct {
	db *gorm.DB
}

type invoiceRecord struct {
	ID            string          `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string          `gorm:"uniqueIndex"`
	CustomerName  string          `gorm:"index"`
	Status        string          `gorm:"index"`
	Amount        decimal.Decimal `gorm:"type:numeric(16,2)"`
	Currency      string
	BankName      string
	AccountNumber string
	CreatedAt     time.Time
}

func (invoiceRecord) TableName() string { return "invoices" }

type attemptRecord struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	InvoiceID string `gorm:"index"`
	Sequence  int
	Extracted datatypes.JSON
	Match     datatypes.JSON
	Decision  datatypes.JSON
	CreatedAt time.Time `gorm:"index"`
}

func (attemptRecord) TableName() string { return "verification_attempts" }

type appliedCommandRecord struct {
	CommandID string `gorm:"primaryKey"`
	AppliedAt time.Time
}

func (appliedCommandRecord) TableName() string { return "applied_commands" }

type invoiceLineRecord struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	InvoiceID string `gorm:"index"`
	ProductID string `gorm:"index"`
	Quantity  int
}

func (invoiceLineRecord) TableName() string { return "invoice_lines" }

type productRecord struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	Name       string
	StockCount int
}

func (productRecord) TableName() string { return "products" }

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&invoiceRecord{},
		&attemptRecord{},
		&appliedCommandRecord{},
		&invoiceLineRecord{},
		&productRecord{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var rec invoiceRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", invoiceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}

	return &domain.Invoice{
		ID:            rec.ID,
		InvoiceNumber: rec.InvoiceNumber,
		CustomerName:  rec.CustomerName,
		Status:        domain.InvoiceStatus(rec.Status),
		Amount:        rec.Amount,
		Currency:      rec.Currency,
		BankName:      rec.BankName,
		AccountNumber: rec.AccountNumber,
		CreatedAt:     rec.CreatedAt,
	}, nil
}

func (s *PostgresStore) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) error {
	result := s.db.WithContext(ctx).
		Model(&invoiceRecord{}).
		Where("id = ?", invoiceID).
		Update("status", string(status))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (s *PostgresStore) AppendAttempt(ctx context.Context, attempt *domain.VerificationAttempt) error {
	extracted, err := json.Marshal(attempt.Extracted)
	if err != nil {
		return fmt.Errorf("encode extracted fields: %w", err)
	}
	match, err := json.Marshal(attempt.Match)
	if err != nil {
		return fmt.Errorf("encode match result: %w", err)
	}
	decision, err := json.Marshal(attempt.Decision)
	if err != nil {
		return fmt.Errorf("encode decision: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&invoiceRecord{}).Where("id = ?", attempt.InvoiceID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrInvoiceNotFound
		}

		var count int64
		if err := tx.Model(&attemptRecord{}).Where("invoice_id = ?", attempt.InvoiceID).Count(&count).Error; err != nil {
			return err
		}
		attempt.Sequence = int(count) + 1

		return tx.Create(&attemptRecord{
			ID:        attempt.ID,
			InvoiceID: attempt.InvoiceID,
			Sequence:  attempt.Sequence,
			Extracted: extracted,
			Match:     match,
			Decision:  decision,
			CreatedAt: attempt.CreatedAt,
		}).Error
	})
}

func (s *PostgresStore) ListAttemptsByInvoice(ctx context.Context, invoiceID string) ([]domain.VerificationAttempt, error) {
	var exists int64
	if err := s.db.WithContext(ctx).Model(&invoiceRecord{}).Where("id = ?", invoiceID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, domain.ErrInvoiceNotFound
	}

	var records []attemptRecord
	err := s.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("sequence ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	attempts := make([]domain.VerificationAttempt, 0, len(records))
	for _, rec := range records {
		attempt := domain.VerificationAttempt{
			ID:        rec.ID,
			InvoiceID: rec.InvoiceID,
			Sequence:  rec.Sequence,
			CreatedAt: rec.CreatedAt,
		}
		if err := json.Unmarshal(rec.Extracted, &attempt.Extracted); err != nil {
			return nil, fmt.Errorf("decode extracted fields: %w", err)
		}
		if err := json.Unmarshal(rec.Match, &attempt.Match); err != nil {
			return nil, fmt.Errorf("decode match result: %w", err)
		}
		if err := json.Unmarshal(rec.Decision, &attempt.Decision); err != nil {
			return nil, fmt.Errorf("decode decision: %w", err)
		}
		attempts = append(attempts, attempt)
	}

	return attempts, nil
}

func (s *PostgresStore) IsCommandApplied(ctx context.Context, commandID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&appliedCommandRecord{}).
		Where("command_id = ?", commandID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *PostgresStore) MarkCommandApplied(ctx context.Context, commandID string) error {
	err := s.db.WithContext(ctx).Create(&appliedCommandRecord{
		CommandID: commandID,
		AppliedAt: time.Now(),
	}).Error
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateCommand
		}
		return err
	}
	return nil
}

func (s *PostgresStore) DecrementStockForInvoice(ctx context.Context, invoiceID string) error {
	return s.db.WithContext(ctx).Exec(
		`UPDATE products SET stock_count = stock_count - l.quantity
		 FROM invoice_lines l
		 WHERE l.invoice_id = ? AND products.id = l.product_id`,
		invoiceID,
	).Error
}
