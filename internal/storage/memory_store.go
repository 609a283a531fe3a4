package storage

import (
	"context"
	"sync"

	"github.com/adsalert/payverify-be/internal/domain"
)

// MemoryStore backs the invoice, attempt, command-log and inventory ports
// with in-process maps. It is the default store for development and tests.
type MemoryStore struct {
	invoices        map[string]domain.Invoice
	attempts        map[string][]domain.VerificationAttempt
	appliedCommands map[string]bool
	stockDecrements map[string]int
	mu              sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		invoices:        make(map[string]domain.Invoice),
		attempts:        make(map[string][]domain.VerificationAttempt),
		appliedCommands: make(map[string]bool),
		stockDecrements: make(map[string]int),
	}
}

// SeedInvoice inserts or replaces an invoice record.
func (s *MemoryStore) SeedInvoice(invoice domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoices[invoice.ID] = invoice
}

func (s *MemoryStore) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	invoice, exists := s.invoices[invoiceID]
	if !exists {
		return nil, domain.ErrInvoiceNotFound
	}

	copied := invoice
	return &copied, nil
}

func (s *MemoryStore) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoice, exists := s.invoices[invoiceID]
	if !exists {
		return domain.ErrInvoiceNotFound
	}

	invoice.Status = status
	s.invoices[invoiceID] = invoice

	return nil
}

func (s *MemoryStore) AppendAttempt(ctx context.Context, attempt *domain.VerificationAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.invoices[attempt.InvoiceID]; !exists {
		return domain.ErrInvoiceNotFound
	}

	attempt.Sequence = len(s.attempts[attempt.InvoiceID]) + 1
	s.attempts[attempt.InvoiceID] = append(s.attempts[attempt.InvoiceID], *attempt)

	return nil
}

func (s *MemoryStore) ListAttemptsByInvoice(ctx context.Context, invoiceID string) ([]domain.VerificationAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.invoices[invoiceID]; !exists {
		return nil, domain.ErrInvoiceNotFound
	}

	attempts := s.attempts[invoiceID]
	out := make([]domain.VerificationAttempt, len(attempts))
	copy(out, attempts)

	return out, nil
}

func (s *MemoryStore) IsCommandApplied(ctx context.Context, commandID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.appliedCommands[commandID], nil
}

func (s *MemoryStore) MarkCommandApplied(ctx context.Context, commandID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.appliedCommands[commandID] {
		return domain.ErrDuplicateCommand
	}
	s.appliedCommands[commandID] = true

	return nil
}

func (s *MemoryStore) DecrementStockForInvoice(ctx context.Context, invoiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.invoices[invoiceID]; !exists {
		return domain.ErrInvoiceNotFound
	}

	s.stockDecrements[invoiceID]++

	return nil
}

// StockDecrements reports how many times stock was decremented for an
// invoice. Test observability only.
func (s *MemoryStore) StockDecrements(invoiceID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stockDecrements[invoiceID]
}
