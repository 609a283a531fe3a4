package domain

import "context"

type InvoiceStore interface {
	GetInvoice(ctx context.Context, invoiceID string) (*Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status InvoiceStatus) error
}

type AttemptStore interface {
	AppendAttempt(ctx context.Context, attempt *VerificationAttempt) error
	ListAttemptsByInvoice(ctx context.Context, invoiceID string) ([]VerificationAttempt, error)
}

// CommandLog tracks executed side-effect commands so redelivered commands
// become no-ops.
type CommandLog interface {
	IsCommandApplied(ctx context.Context, commandID string) (bool, error)
	MarkCommandApplied(ctx context.Context, commandID string) error
}

type InventoryMutator interface {
	DecrementStockForInvoice(ctx context.Context, invoiceID string) error
}

type Notifier interface {
	Notify(ctx context.Context, invoiceID string, kind NotificationKind, payload map[string]string) error
}

// CommandSink is where the orchestrator hands off side-effect commands.
type CommandSink interface {
	Emit(ctx context.Context, cmd Command) error
}
