package verification

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adsalert/payverify-be/internal/domain"
)

func testScoringConfig() ScoringConfig {
	return ScoringConfig{
		AmountTolerance:         0.01,
		PartialPaymentThreshold: 0.9,
		BankSimilarityThreshold: 0.85,
		AmountWeight:            0.5,
		BankWeight:              0.2,
		AccountWeight:           0.2,
		CurrencyWeight:          0.1,
	}
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testExpected() domain.ExpectedPayment {
	return domain.ExpectedPayment{
		InvoiceID:     "inv-1",
		Amount:        decimal.RequireFromString("2499.99"),
		Currency:      "USD",
		BankName:      "First National Bank",
		AccountNumber: "1234567890",
		Status:        domain.InvoiceStatusPending,
	}
}

func TestScore_AllFieldsMatch(t *testing.T) {
	scorer := NewMatchScorer(testScoringConfig())

	extracted := domain.ExtractedFields{
		Amount:     decPtr("2499.99"),
		Currency:   strPtr("usd"),
		BankName:   strPtr("FIRST NATIONAL BANK"),
		Account:    strPtr("1234-5678-90"),
		Confidence: 92,
	}

	result := scorer.Score(extracted, testExpected())

	assert.True(t, result.AmountMatch)
	assert.True(t, result.BankMatch)
	assert.True(t, result.AccountMatch)
	assert.True(t, result.CurrencyMatch)
	assert.False(t, result.PartialPaymentCandidate)
	assert.InDelta(t, 92.0, result.Composite, 0.0001)
}

func TestScore_IsDeterministic(t *testing.T) {
	scorer := NewMatchScorer(testScoringConfig())

	extracted := domain.ExtractedFields{
		Amount:     decPtr("2475.50"),
		Currency:   strPtr("USD"),
		BankName:   strPtr("Fist National Bnk"),
		Account:    strPtr("1234567890"),
		Confidence: 77,
	}
	expected := testExpected()

	first := scorer.Score(extracted, expected)
	second := scorer.Score(extracted, expected)

	assert.Equal(t, first, second)
}

func TestScore_DoesNotMutateInputs(t *testing.T) {
	scorer := NewMatchScorer(testScoringConfig())

	amount := decimal.RequireFromString("2000.00")
	bank := "First National Bank"
	extracted := domain.ExtractedFields{
		Amount:     &amount,
		BankName:   &bank,
		Confidence: 80,
	}

	scorer.Score(extracted, testExpected())

	assert.True(t, amount.Equal(decimal.RequireFromString("2000.00")))
	assert.Equal(t, "First National Bank", bank)
}

func TestScore_AmountTolerance(t *testing.T) {
	scorer := NewMatchScorer(testScoringConfig())
	expected := testExpected()

	tests := []struct {
		name   string
		amount string
		match  bool
	}{
		{name: "exact", amount: "2499.99", match: true},
		{name: "within tolerance below", amount: "2475.00", match: true},
		{name: "within tolerance above", amount: "2524.98", match: true},
		{name: "just outside tolerance", amount: "2470.00", match: false},
		{name: "far above", amount: "3000.00", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extracted := domain.ExtractedFields{Amount: decPtr(tt.amount), Confidence: 90}
			result := scorer.Score(extracted, expected)
			assert.Equal(t, tt.match, result.AmountMatch)
		})
	}
}

func TestScore_PartialPaymentCandidate(t *testing.T) {
	scorer := NewMatchScorer(testScoringConfig())
	expected := testExpected()

	// Far below the 90% floor.
	extracted := domain.ExtractedFields{
		Amount:     decPtr("250.00"),
		Currency:   strPtr("USD"),
		BankName:   strPtr("First National Bank"),
		Account:    strPtr("1234567890"),
		Confidence: 95,
	}

	result := scorer.Score(extracted, expected)

	assert.True(t, result.PartialPaymentCandidate)
	assert.False(t, result.AmountMatch)
	assert.True(t, result.AmountDelta.IsNegative())
	assert.InDelta(t, -0.9, result.DeltaRatio, 0.001)

	// Underpaid but above the floor: a mismatch, not a partial.
	extracted.Amount = decPtr("2400.00")
	result = scorer.Score(extracted, expected)
	assert.False(t, result.PartialPaymentCandidate)
}

func TestScore_MissingAmount(t *testing.T) {
	scorer := NewMatchScorer(testScoringConfig())

	extracted := domain.ExtractedFields{
		BankName:   strPtr("First National Bank"),
		Confidence: 90,
	}

	result := scorer.Score(extracted, testExpected())

	assert.False(t, result.AmountMatch)
	assert.False(t, result.PartialPaymentCandidate)
	assert.Nil(t, result.ReceivedAmount)
	assert.True(t, result.AmountDelta.Equal(decimal.RequireFromString("-2499.99")))
	assert.InDelta(t, -1.0, result.DeltaRatio, 0.0001)
}

func TestScore_BankNameFuzzyMatch(t *testing.T) {
	scorer := NewMatchScorer(testScoringConfig())
	expected := testExpected()

	tests := []struct {
		name  string
		bank  string
		match bool
	}{
		{name: "case and spacing noise", bank: "  first   NATIONAL bank ", match: true},
		{name: "substring", bank: "National Bank", match: true},
		{name: "single OCR typo", bank: "First Nationai Bank", match: true},
		{name: "different bank", bank: "Wrong Bank", match: false},
		{name: "empty", bank: "   ", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extracted := domain.ExtractedFields{BankName: strPtr(tt.bank), Confidence: 90}
			result := scorer.Score(extracted, expected)
			assert.Equal(t, tt.match, result.BankMatch)
		})
	}
}

func TestScore_AccountDigitsOnlyExact(t *testing.T) {
	scorer := NewMatchScorer(testScoringConfig())
	expected := testExpected()

	tests := []struct {
		name    string
		account string
		match   bool
	}{
		{name: "exact", account: "1234567890", match: true},
		{name: "formatted", account: "1234-5678-90", match: true},
		{name: "spaced", account: "1234 5678 90", match: true},
		{name: "one digit off", account: "1234567891", match: false},
		{name: "truncated", account: "123456789", match: false},
		{name: "no digits at all", account: "acct", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extracted := domain.ExtractedFields{Account: strPtr(tt.account), Confidence: 90}
			result := scorer.Score(extracted, expected)
			assert.Equal(t, tt.match, result.AccountMatch)
		})
	}
}

func TestScore_CompositeWeighting(t *testing.T) {
	scorer := NewMatchScorer(testScoringConfig())
	expected := testExpected()

	// Only bank and currency agree: (0.2 + 0.1) / 1.0 of the confidence.
	extracted := domain.ExtractedFields{
		Amount:     decPtr("100.00"),
		Currency:   strPtr("USD"),
		BankName:   strPtr("First National Bank"),
		Account:    strPtr("9999999999"),
		Confidence: 80,
	}

	result := scorer.Score(extracted, expected)

	require.False(t, result.AmountMatch)
	require.False(t, result.AccountMatch)
	assert.InDelta(t, 24.0, result.Composite, 0.0001)
}

func TestScore_NoFieldsExtracted(t *testing.T) {
	scorer := NewMatchScorer(testScoringConfig())

	result := scorer.Score(domain.ExtractedFields{Confidence: 95}, testExpected())

	assert.False(t, result.AmountMatch)
	assert.False(t, result.BankMatch)
	assert.False(t, result.AccountMatch)
	assert.False(t, result.CurrencyMatch)
	assert.Zero(t, result.Composite)
}
