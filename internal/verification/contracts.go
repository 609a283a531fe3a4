package verification

import (
	"context"

	"github.com/adsalert/payverify-be/internal/domain"
)

// Extractor turns a screenshot into an OCR field set.
type Extractor interface {
	Extract(ctx context.Context, screenshot domain.PaymentScreenshot) (domain.ExtractedFields, error)
}

// Resolver loads the invoice-side expected payment attributes.
type Resolver interface {
	Resolve(ctx context.Context, invoiceID string) (domain.ExpectedPayment, error)
}
