package verification

import (
	"context"

	"github.com/adsalert/payverify-be/internal/domain"
	"github.com/adsalert/payverify-be/pkg/logger"
)

// ExpectationResolver reads the live invoice record on every call. Merchants
// can edit bank details between attempts, so nothing here is cached.
type ExpectationResolver struct {
	invoices domain.InvoiceStore
	logger   *logger.Logger
}

func NewExpectationResolver(invoices domain.InvoiceStore, log *logger.Logger) *ExpectationResolver {
	return &ExpectationResolver{
		invoices: invoices,
		logger:   log,
	}
}

func (r *ExpectationResolver) Resolve(ctx context.Context, invoiceID string) (domain.ExpectedPayment, error) {
	invoice, err := r.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		return domain.ExpectedPayment{}, err
	}

	if !invoice.Status.Payable() {
		r.logger.Debug(ctx, "Invoice not in payable state",
			"status", invoice.Status,
		)
		return domain.ExpectedPayment{}, domain.ErrInvoiceNotAwaitingPayment
	}

	return domain.ExpectedPayment{
		InvoiceID:     invoice.ID,
		Amount:        invoice.Amount,
		Currency:      invoice.Currency,
		BankName:      invoice.BankName,
		AccountNumber: invoice.AccountNumber,
		Status:        invoice.Status,
	}, nil
}
