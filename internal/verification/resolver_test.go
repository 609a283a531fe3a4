package verification

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adsalert/payverify-be/internal/domain"
	"github.com/adsalert/payverify-be/mocks"
	"github.com/adsalert/payverify-be/pkg/logger"
)

func TestResolve_PayableInvoice(t *testing.T) {
	invoices := mocks.NewMockInvoiceStore(t)
	resolver := NewExpectationResolver(invoices, logger.NewNop())

	invoice := &domain.Invoice{
		ID:            "inv-1",
		Amount:        decimal.RequireFromString("2499.99"),
		Currency:      "USD",
		BankName:      "First National Bank",
		AccountNumber: "1234567890",
		Status:        domain.InvoiceStatusPending,
	}
	invoices.EXPECT().
		GetInvoice(mock.Anything, "inv-1").
		Return(invoice, nil).
		Once()

	expected, err := resolver.Resolve(context.Background(), "inv-1")

	require.NoError(t, err)
	assert.Equal(t, "inv-1", expected.InvoiceID)
	assert.True(t, expected.Amount.Equal(invoice.Amount))
	assert.Equal(t, "First National Bank", expected.BankName)
	assert.Equal(t, "1234567890", expected.AccountNumber)
	assert.Equal(t, domain.InvoiceStatusPending, expected.Status)
}

func TestResolve_ReadsFreshEveryCall(t *testing.T) {
	invoices := mocks.NewMockInvoiceStore(t)
	resolver := NewExpectationResolver(invoices, logger.NewNop())

	first := &domain.Invoice{
		ID:            "inv-1",
		Amount:        decimal.RequireFromString("100.00"),
		BankName:      "Old Bank",
		AccountNumber: "111",
		Status:        domain.InvoiceStatusPending,
	}
	second := &domain.Invoice{
		ID:            "inv-1",
		Amount:        decimal.RequireFromString("100.00"),
		BankName:      "New Bank",
		AccountNumber: "222",
		Status:        domain.InvoiceStatusPending,
	}
	invoices.EXPECT().GetInvoice(mock.Anything, "inv-1").Return(first, nil).Once()
	invoices.EXPECT().GetInvoice(mock.Anything, "inv-1").Return(second, nil).Once()

	got1, err := resolver.Resolve(context.Background(), "inv-1")
	require.NoError(t, err)
	got2, err := resolver.Resolve(context.Background(), "inv-1")
	require.NoError(t, err)

	assert.Equal(t, "Old Bank", got1.BankName)
	assert.Equal(t, "New Bank", got2.BankName)
}

func TestResolve_NotFound(t *testing.T) {
	invoices := mocks.NewMockInvoiceStore(t)
	resolver := NewExpectationResolver(invoices, logger.NewNop())

	invoices.EXPECT().
		GetInvoice(mock.Anything, "inv-missing").
		Return(nil, domain.ErrInvoiceNotFound).
		Once()

	_, err := resolver.Resolve(context.Background(), "inv-missing")

	require.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestResolve_NotAwaitingPayment(t *testing.T) {
	invoices := mocks.NewMockInvoiceStore(t)
	resolver := NewExpectationResolver(invoices, logger.NewNop())

	tests := []struct {
		status  domain.InvoiceStatus
		payable bool
	}{
		{status: domain.InvoiceStatusPending, payable: true},
		{status: domain.InvoiceStatusPartiallyPaid, payable: true},
		{status: domain.InvoiceStatusUnderReview, payable: false},
		{status: domain.InvoiceStatusPaid, payable: false},
		{status: domain.InvoiceStatusCancelled, payable: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			invoices.EXPECT().
				GetInvoice(mock.Anything, "inv-1").
				Return(&domain.Invoice{ID: "inv-1", Status: tt.status}, nil).
				Once()

			_, err := resolver.Resolve(context.Background(), "inv-1")

			if tt.payable {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvoiceNotAwaitingPayment)
			}
		})
	}
}
