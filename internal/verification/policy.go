package verification

import (
	"github.com/adsalert/payverify-be/internal/domain"
)

type DecisionConfig struct {
	AutoApproveThreshold  float64
	ManualReviewThreshold float64
}

// DecisionPolicy maps a scored attempt to a terminal decision. Decide is a
// pure function of its inputs; repeated uploads are idempotent in logic,
// though every run still lands in the audit trail.
type DecisionPolicy struct {
	cfg DecisionConfig
}

func NewDecisionPolicy(cfg DecisionConfig) *DecisionPolicy {
	return &DecisionPolicy{cfg: cfg}
}

// Decide applies the transition table in priority order; the first matching
// rule wins.
func (p *DecisionPolicy) Decide(composite float64, match domain.FieldMatchResult) domain.VerificationDecision {
	// 1. Correctly-directed but materially short payment.
	if match.PartialPaymentCandidate && match.BankMatch && match.AccountMatch {
		return domain.VerificationDecision{
			Outcome:        domain.DecisionPartialPayment,
			ReceivedAmount: match.ReceivedAmount,
			ExpectedAmount: &match.ExpectedAmount,
		}
	}

	// 2. Wrong destination is a hard reject, whatever the composite says.
	if !match.BankMatch || !match.AccountMatch {
		return domain.VerificationDecision{
			Outcome:      domain.DecisionRejected,
			RejectReason: domain.RejectReasonWrongBankOrAccount,
		}
	}

	// 3-5. Confidence bands.
	switch {
	case composite >= p.cfg.AutoApproveThreshold:
		return domain.VerificationDecision{Outcome: domain.DecisionAutoApproved}
	case composite >= p.cfg.ManualReviewThreshold:
		return domain.VerificationDecision{Outcome: domain.DecisionManualReview}
	default:
		return domain.VerificationDecision{
			Outcome:      domain.DecisionRejected,
			RejectReason: domain.RejectReasonLowConfidence,
		}
	}
}
