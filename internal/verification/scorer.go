package verification

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"github.com/shopspring/decimal"

	"github.com/adsalert/payverify-be/internal/domain"
)

// ScoringConfig carries the tunable knobs of the match scorer. Defaults live
// in the config package, not here.
type ScoringConfig struct {
	AmountTolerance         float64
	PartialPaymentThreshold float64
	BankSimilarityThreshold float64
	AmountWeight            float64
	BankWeight              float64
	AccountWeight           float64
	CurrencyWeight          float64
}

// MatchScorer compares extracted against expected fields. Score is
// deterministic and never mutates its inputs.
type MatchScorer struct {
	cfg ScoringConfig
}

func NewMatchScorer(cfg ScoringConfig) *MatchScorer {
	return &MatchScorer{cfg: cfg}
}

func (s *MatchScorer) Score(extracted domain.ExtractedFields, expected domain.ExpectedPayment) domain.FieldMatchResult {
	result := domain.FieldMatchResult{
		ExpectedAmount: expected.Amount,
	}

	if extracted.Amount != nil {
		received := *extracted.Amount
		result.ReceivedAmount = &received
		result.AmountDelta = received.Sub(expected.Amount)

		if expected.Amount.IsPositive() {
			result.DeltaRatio = result.AmountDelta.Div(expected.Amount).InexactFloat64()

			relDelta := result.AmountDelta.Abs().Div(expected.Amount)
			result.AmountMatch = relDelta.LessThanOrEqual(decimal.NewFromFloat(s.cfg.AmountTolerance))

			// Materially underpaid regardless of the tolerance band.
			floor := expected.Amount.Mul(decimal.NewFromFloat(s.cfg.PartialPaymentThreshold))
			result.PartialPaymentCandidate = received.LessThan(floor)
		}
	} else {
		result.AmountDelta = expected.Amount.Neg()
		result.DeltaRatio = -1
	}

	if extracted.BankName != nil {
		result.BankMatch = s.bankMatches(*extracted.BankName, expected.BankName)
	}

	if extracted.Account != nil {
		result.AccountMatch = accountMatches(*extracted.Account, expected.AccountNumber)
	}

	if extracted.Currency != nil {
		result.CurrencyMatch = normalizeCurrency(*extracted.Currency) == normalizeCurrency(expected.Currency)
	}

	result.Composite = s.composite(extracted.Confidence, result)

	return result
}

// composite couples OCR certainty with field agreement: a confident read of
// clearly wrong fields still scores low.
func (s *MatchScorer) composite(confidence int, match domain.FieldMatchResult) float64 {
	totalWeight := s.cfg.AmountWeight + s.cfg.BankWeight + s.cfg.AccountWeight + s.cfg.CurrencyWeight
	if totalWeight <= 0 {
		return 0
	}

	matched := 0.0
	if match.AmountMatch {
		matched += s.cfg.AmountWeight
	}
	if match.BankMatch {
		matched += s.cfg.BankWeight
	}
	if match.AccountMatch {
		matched += s.cfg.AccountWeight
	}
	if match.CurrencyMatch {
		matched += s.cfg.CurrencyWeight
	}

	return float64(confidence) * (matched / totalWeight)
}

// bankMatches accepts a normalized substring hit or a Levenshtein similarity
// above the configured threshold, to absorb OCR noise in free-text bank names.
func (s *MatchScorer) bankMatches(extracted, expected string) bool {
	a := normalizeText(extracted)
	b := normalizeText(expected)

	if a == "" || b == "" {
		return false
	}

	if strings.Contains(b, a) || strings.Contains(a, b) {
		return true
	}

	return levenshtein.Similarity(a, b, nil) >= s.cfg.BankSimilarityThreshold
}

// accountMatches is deliberately strict: digits-only exact equality. Account
// numbers must never fuzzy-match.
func accountMatches(extracted, expected string) bool {
	a := digitsOnly(extracted)
	b := digitsOnly(expected)
	return a != "" && a == b
}

func normalizeText(s string) string {
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

func normalizeCurrency(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
