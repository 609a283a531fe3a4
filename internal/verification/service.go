package verification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adsalert/payverify-be/internal/domain"
	"github.com/adsalert/payverify-be/pkg/logger"
)

// Service orchestrates a verification run: resolve expectation, extract
// fields, score, decide, persist the attempt, emit side-effect commands.
// It never executes side effects itself.
type Service struct {
	extractor Extractor
	resolver  Resolver
	scorer    *MatchScorer
	policy    *DecisionPolicy
	attempts  domain.AttemptStore
	commands  domain.CommandSink
	logger    *logger.Logger
}

func NewService(
	extractor Extractor,
	resolver Resolver,
	scorer *MatchScorer,
	policy *DecisionPolicy,
	attempts domain.AttemptStore,
	commands domain.CommandSink,
	log *logger.Logger,
) *Service {
	return &Service{
		extractor: extractor,
		resolver:  resolver,
		scorer:    scorer,
		policy:    policy,
		attempts:  attempts,
		commands:  commands,
		logger:    log,
	}
}

type extraction struct {
	fields domain.ExtractedFields
	err    error
}

func (s *Service) Verify(ctx context.Context, invoiceID string, screenshot domain.PaymentScreenshot) (*domain.VerificationAttempt, error) {
	ctx = logger.WithInvoiceID(ctx, invoiceID)

	s.logger.Info(ctx, "Starting verification",
		"mime_type", screenshot.MIMEType,
		"size", screenshot.Size,
	)

	// Extraction and expectation resolution are independent; run them
	// concurrently. The channel is buffered so an early return on a resolver
	// error cannot leak the goroutine.
	extractCh := make(chan extraction, 1)
	go func() {
		fields, err := s.extractor.Extract(ctx, screenshot)
		extractCh <- extraction{fields: fields, err: err}
	}()

	expected, err := s.resolver.Resolve(ctx, invoiceID)
	if err != nil {
		s.logger.Warn(ctx, "Expectation resolution failed",
			"error", err,
		)
		return nil, err
	}

	ext := <-extractCh
	if ext.err != nil {
		s.logger.Warn(ctx, "Field extraction failed",
			"error", ext.err,
		)
		return nil, ext.err
	}

	match := s.scorer.Score(ext.fields, expected)
	decision := s.policy.Decide(match.Composite, match)

	// No partial commits once the caller has gone away.
	if err := ctx.Err(); err != nil {
		s.logger.Warn(ctx, "Verification abandoned before commit",
			"error", err,
		)
		return nil, err
	}

	attempt := &domain.VerificationAttempt{
		ID:        uuid.New().String(),
		InvoiceID: invoiceID,
		Extracted: ext.fields,
		Match:     match,
		Decision:  decision,
		CreatedAt: time.Now(),
	}

	if err := s.attempts.AppendAttempt(ctx, attempt); err != nil {
		s.logger.Error(ctx, "Failed to persist verification attempt",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Verification decided",
		"attempt_id", attempt.ID,
		"outcome", decision.Outcome,
		"composite", match.Composite,
		"ocr_confidence", ext.fields.Confidence,
	)

	if err := s.emitCommands(ctx, attempt); err != nil {
		return attempt, err
	}

	return attempt, nil
}

func (s *Service) History(ctx context.Context, invoiceID string) ([]domain.VerificationAttempt, error) {
	ctx = logger.WithInvoiceID(ctx, invoiceID)

	attempts, err := s.attempts.ListAttemptsByInvoice(ctx, invoiceID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list verification attempts",
			"error", err,
		)
		return nil, err
	}

	return attempts, nil
}

func (s *Service) emitCommands(ctx context.Context, attempt *domain.VerificationAttempt) error {
	for _, cmd := range commandsFor(attempt) {
		if err := s.commands.Emit(ctx, cmd); err != nil {
			s.logger.Error(ctx, "Failed to emit command",
				"attempt_id", attempt.ID,
				"command_type", cmd.Type,
				"error", err,
			)
			return err
		}
	}
	return nil
}

// commandsFor maps a decision to its side-effect commands. Command IDs are
// derived from the attempt so redelivery stays idempotent.
func commandsFor(attempt *domain.VerificationAttempt) []domain.Command {
	base := func(t domain.CommandType) domain.Command {
		return domain.Command{
			ID:        attempt.ID + ":" + string(t),
			Type:      t,
			InvoiceID: attempt.InvoiceID,
			AttemptID: attempt.ID,
		}
	}

	switch attempt.Decision.Outcome {
	case domain.DecisionAutoApproved:
		notify := base(domain.CommandNotifyCustomer)
		notify.Kind = domain.NotifyApproved
		return []domain.Command{
			base(domain.CommandMarkInvoicePaid),
			base(domain.CommandDecrementStock),
			notify,
		}

	case domain.DecisionManualReview:
		notify := base(domain.CommandNotifyCustomer)
		notify.Kind = domain.NotifyPendingReview
		return []domain.Command{
			base(domain.CommandFlagForAdminReview),
			notify,
		}

	case domain.DecisionRejected:
		notify := base(domain.CommandNotifyCustomer)
		notify.Kind = domain.NotifyRejected
		notify.Reason = attempt.Decision.RejectReason
		return []domain.Command{notify}

	case domain.DecisionPartialPayment:
		notify := base(domain.CommandNotifyCustomer)
		notify.Kind = domain.NotifyPartial
		notify.Received = attempt.Decision.ReceivedAmount
		notify.Expected = attempt.Decision.ExpectedAmount
		// Invoice status stays untouched; accepting the partial amount is a
		// merchant action outside this engine.
		return []domain.Command{notify}

	default:
		return nil
	}
}
