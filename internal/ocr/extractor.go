package ocr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adsalert/payverify-be/internal/domain"
	"github.com/adsalert/payverify-be/pkg/logger"
)

var acceptedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
}

// FieldExtractor turns a payment screenshot into a confidence-annotated
// field set by calling the OCR provider. It distinguishes "OCR ran and found
// nothing" (success, nil fields) from "OCR did not run" (error).
type FieldExtractor struct {
	provider Provider
	logger   *logger.Logger
}

func NewFieldExtractor(provider Provider, log *logger.Logger) *FieldExtractor {
	return &FieldExtractor{
		provider: provider,
		logger:   log,
	}
}

func (e *FieldExtractor) Extract(ctx context.Context, screenshot domain.PaymentScreenshot) (domain.ExtractedFields, error) {
	if len(screenshot.Content) == 0 {
		return domain.ExtractedFields{}, domain.ErrEmptyScreenshot
	}

	mimeType := normalizeMIME(screenshot.MIMEType)
	if !acceptedMIMETypes[mimeType] {
		return domain.ExtractedFields{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedMediaType, screenshot.MIMEType)
	}

	start := time.Now()

	result, err := e.provider.ExtractPaymentFields(ctx, screenshot.Content, mimeType)
	if err != nil {
		return domain.ExtractedFields{}, err
	}

	fields := domain.ExtractedFields{
		Currency:   result.Currency,
		BankName:   result.Bank,
		Account:    result.Account,
		Confidence: clampConfidence(result.Confidence),
	}

	if result.Amount != nil {
		amount, err := parseAmount(*result.Amount)
		if err != nil {
			// An unreadable amount is treated as not found, not a failure.
			e.logger.Warn(ctx, "Discarding unparseable extracted amount",
				"raw", *result.Amount,
				"error", err,
			)
		} else {
			fields.Amount = &amount
		}
	}

	if result.Date != nil {
		if paidAt, err := parseDate(*result.Date); err == nil {
			fields.PaidAt = &paidAt
		}
	}

	e.logger.Debug(ctx, "Extraction completed",
		"confidence", fields.Confidence,
		"has_amount", fields.Amount != nil,
		"has_bank", fields.BankName != nil,
		"has_account", fields.Account != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return fields, nil
}

func normalizeMIME(mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if mimeType == "image/jpg" {
		return "image/jpeg"
	}
	return mimeType
}

// parseAmount reads an OCR amount string into a fixed-point decimal.
// Thousands separators and currency symbols are stripped first.
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, raw)

	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("no digits in amount %q", raw)
	}

	return decimal.NewFromString(cleaned)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02", "02-01-2006", "02/01/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func clampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
