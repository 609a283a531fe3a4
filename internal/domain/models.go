package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "pending"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusUnderReview   InvoiceStatus = "under_review"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

// Payable reports whether an invoice in this status may still receive a
// payment verification attempt.
func (s InvoiceStatus) Payable() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPartiallyPaid
}

type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	Status        InvoiceStatus   `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PaymentScreenshot is the immutable upload a verification attempt runs on.
type PaymentScreenshot struct {
	InvoiceID string `json:"invoice_id"`
	MIMEType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	Content   []byte `json:"-"`
}

// ExtractedFields is what OCR found in a screenshot. Every field is optional
// because the provider may fail to locate any of them; Confidence is always
// present when extraction actually ran.
type ExtractedFields struct {
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Currency   *string          `json:"currency,omitempty"`
	BankName   *string          `json:"bank_name,omitempty"`
	Account    *string          `json:"account,omitempty"`
	PaidAt     *time.Time       `json:"paid_at,omitempty"`
	Confidence int              `json:"confidence"`
}

// ExpectedPayment is the invoice-side ground truth, read fresh per attempt.
type ExpectedPayment struct {
	InvoiceID     string          `json:"invoice_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	Status        InvoiceStatus   `json:"status"`
}

type FieldMatchResult struct {
	AmountMatch             bool             `json:"amount_match"`
	BankMatch               bool             `json:"bank_match"`
	AccountMatch            bool             `json:"account_match"`
	CurrencyMatch           bool             `json:"currency_match"`
	AmountDelta             decimal.Decimal  `json:"amount_delta"`
	DeltaRatio              float64          `json:"delta_ratio"`
	PartialPaymentCandidate bool             `json:"partial_payment_candidate"`
	ReceivedAmount          *decimal.Decimal `json:"received_amount,omitempty"`
	ExpectedAmount          decimal.Decimal  `json:"expected_amount"`
	Composite               float64          `json:"composite"`
}

type DecisionOutcome string

const (
	DecisionAutoApproved   DecisionOutcome = "auto_approved"
	DecisionManualReview   DecisionOutcome = "manual_review"
	DecisionRejected       DecisionOutcome = "rejected"
	DecisionPartialPayment DecisionOutcome = "partial_payment"
)

const (
	RejectReasonWrongBankOrAccount = "wrong_bank_or_account"
	RejectReasonLowConfidence      = "low_confidence"
)

type VerificationDecision struct {
	Outcome        DecisionOutcome  `json:"outcome"`
	RejectReason   string           `json:"reject_reason,omitempty"`
	ReceivedAmount *decimal.Decimal `json:"received_amount,omitempty"`
	ExpectedAmount *decimal.Decimal `json:"expected_amount,omitempty"`
}

// VerificationAttempt is the append-only record of one pipeline run.
// Sequence is assigned by the attempt store and is monotonic per invoice.
type VerificationAttempt struct {
	ID        string               `json:"id"`
	InvoiceID string               `json:"invoice_id"`
	Sequence  int                  `json:"sequence"`
	Extracted ExtractedFields      `json:"extracted"`
	Match     FieldMatchResult     `json:"match"`
	Decision  VerificationDecision `json:"decision"`
	CreatedAt time.Time            `json:"created_at"`
}

type CommandType string

const (
	CommandMarkInvoicePaid    CommandType = "mark_invoice_paid"
	CommandDecrementStock     CommandType = "decrement_stock"
	CommandNotifyCustomer     CommandType = "notify_customer"
	CommandFlagForAdminReview CommandType = "flag_for_admin_review"
)

type NotificationKind string

const (
	NotifyApproved      NotificationKind = "approved"
	NotifyPendingReview NotificationKind = "pending_review"
	NotifyRejected      NotificationKind = "rejected"
	NotifyPartial       NotificationKind = "partial"
)

// Command is a side effect the orchestrator wants executed. The orchestrator
// only emits; the command consumer owns execution.
type Command struct {
	ID        string           `json:"id"`
	Type      CommandType      `json:"type"`
	InvoiceID string           `json:"invoice_id"`
	AttemptID string           `json:"attempt_id"`
	Kind      NotificationKind `json:"kind,omitempty"`
	Reason    string           `json:"reason,omitempty"`
	Received  *decimal.Decimal `json:"received,omitempty"`
	Expected  *decimal.Decimal `json:"expected,omitempty"`
}
