package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adsalert/payverify-be/internal/domain"
)

func seedStore(t *testing.T) *MemoryStore {
	t.Helper()

	store := NewMemoryStore()
	store.SeedInvoice(domain.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-2026-0001",
		CustomerName:  "Acme Corp",
		Status:        domain.InvoiceStatusPending,
		Amount:        decimal.RequireFromString("2499.99"),
		Currency:      "USD",
		BankName:      "First National Bank",
		AccountNumber: "1234567890",
	})

	return store
}

func TestGetInvoice(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	invoice, err := store.GetInvoice(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "inv-1", invoice.ID)
	assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)

	_, err = store.GetInvoice(ctx, "inv-missing")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestGetInvoice_ReturnsCopy(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	first, err := store.GetInvoice(ctx, "inv-1")
	require.NoError(t, err)

	first.Status = domain.InvoiceStatusCancelled

	second, err := store.GetInvoice(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPending, second.Status)
}

func TestUpdateInvoiceStatus(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpdateInvoiceStatus(ctx, "inv-1", domain.InvoiceStatusPaid))

	invoice, err := store.GetInvoice(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, invoice.Status)

	err = store.UpdateInvoiceStatus(ctx, "inv-missing", domain.InvoiceStatusPaid)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestAppendAttempt_AssignsSequence(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		attempt := &domain.VerificationAttempt{
			ID:        fmt.Sprintf("a-%d", i),
			InvoiceID: "inv-1",
		}
		require.NoError(t, store.AppendAttempt(ctx, attempt))
		assert.Equal(t, i, attempt.Sequence)
	}

	attempts, err := store.ListAttemptsByInvoice(ctx, "inv-1")
	require.NoError(t, err)
	require.Len(t, attempts, 3)
	for i, attempt := range attempts {
		assert.Equal(t, i+1, attempt.Sequence)
	}
}

func TestAppendAttempt_UnknownInvoice(t *testing.T) {
	store := seedStore(t)

	err := store.AppendAttempt(context.Background(), &domain.VerificationAttempt{
		ID:        "a-1",
		InvoiceID: "inv-missing",
	})

	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestListAttemptsByInvoice_ReturnsCopy(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendAttempt(ctx, &domain.VerificationAttempt{ID: "a-1", InvoiceID: "inv-1"}))

	attempts, err := store.ListAttemptsByInvoice(ctx, "inv-1")
	require.NoError(t, err)
	attempts[0].ID = "mutated"

	again, err := store.ListAttemptsByInvoice(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "a-1", again[0].ID)
}

func TestListAttemptsByInvoice_UnknownInvoice(t *testing.T) {
	store := seedStore(t)

	_, err := store.ListAttemptsByInvoice(context.Background(), "inv-missing")

	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestCommandLog(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	applied, err := store.IsCommandApplied(ctx, "a-1:mark_invoice_paid")
	require.NoError(t, err)
	assert.False(t, applied)

	require.NoError(t, store.MarkCommandApplied(ctx, "a-1:mark_invoice_paid"))

	applied, err = store.IsCommandApplied(ctx, "a-1:mark_invoice_paid")
	require.NoError(t, err)
	assert.True(t, applied)

	err = store.MarkCommandApplied(ctx, "a-1:mark_invoice_paid")
	assert.ErrorIs(t, err, domain.ErrDuplicateCommand)
}

func TestDecrementStockForInvoice(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	require.NoError(t, store.DecrementStockForInvoice(ctx, "inv-1"))
	require.NoError(t, store.DecrementStockForInvoice(ctx, "inv-1"))
	assert.Equal(t, 2, store.StockDecrements("inv-1"))

	err := store.DecrementStockForInvoice(ctx, "inv-missing")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestConcurrentAccess(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	const goroutines = 20

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			attempt := &domain.VerificationAttempt{
				ID:        fmt.Sprintf("a-%d", n),
				InvoiceID: "inv-1",
			}
			assert.NoError(t, store.AppendAttempt(ctx, attempt))

			_, err := store.GetInvoice(ctx, "inv-1")
			assert.NoError(t, err)

			assert.NoError(t, store.MarkCommandApplied(ctx, attempt.ID+":notify_customer"))
		}(i)
	}
	wg.Wait()

	attempts, err := store.ListAttemptsByInvoice(ctx, "inv-1")
	require.NoError(t, err)
	require.Len(t, attempts, goroutines)

	// Sequences stay dense and unique under concurrency.
	seen := make(map[int]bool, goroutines)
	for _, attempt := range attempts {
		assert.False(t, seen[attempt.Sequence])
		seen[attempt.Sequence] = true
		assert.GreaterOrEqual(t, attempt.Sequence, 1)
		assert.LessOrEqual(t, attempt.Sequence, goroutines)
	}
}
