package commandbus

import (
	"context"
	"fmt"
	"sync"

	"github.com/adsalert/payverify-be/internal/domain"
	"github.com/adsalert/payverify-be/pkg/logger"
)

// Executor runs the side-effect commands the verification engine emits.
// Commands touching the same invoice are serialized through a per-invoice
// lock, and every command is checked against the command log first, so
// concurrent or redelivered auto-approvals cannot double-decrement stock or
// double-notify.
type Executor struct {
	invoices    domain.InvoiceStore
	inventory   domain.InventoryMutator
	notifier    domain.Notifier
	commandLog  domain.CommandLog
	logger      *logger.Logger
	workerCount int

	locksMu sync.Mutex
	locks   map[string]*invoiceLock
}

// invoiceLock is reference-counted so entries for settled invoices are
// released instead of accumulating for the process lifetime.
type invoiceLock struct {
	mu   sync.Mutex
	refs int
}

func NewExecutor(
	invoices domain.InvoiceStore,
	inventory domain.InventoryMutator,
	notifier domain.Notifier,
	commandLog domain.CommandLog,
	log *logger.Logger,
	workerCount int,
) *Executor {
	return &Executor{
		invoices:    invoices,
		inventory:   inventory,
		notifier:    notifier,
		commandLog:  commandLog,
		logger:      log,
		workerCount: workerCount,
		locks:       make(map[string]*invoiceLock),
	}
}

func (e *Executor) WorkerCount() int {
	return e.workerCount
}

func (e *Executor) Handle(ctx context.Context, cmd domain.Command) error {
	lock := e.acquireInvoiceLock(cmd.InvoiceID)
	defer e.releaseInvoiceLock(cmd.InvoiceID, lock)

	applied, err := e.commandLog.IsCommandApplied(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if applied {
		e.logger.Debug(ctx, "Command already applied, skipping",
			"command_id", cmd.ID,
		)
		return nil
	}

	// Approval side effects must happen at most once per invoice, whichever
	// attempt wins. A second concurrent auto-approval carries different
	// command IDs, so the per-attempt log alone cannot catch it.
	scopeID, scoped := invoiceScopeID(cmd)
	if scoped {
		done, err := e.commandLog.IsCommandApplied(ctx, scopeID)
		if err != nil {
			return err
		}
		if done {
			e.logger.Debug(ctx, "Invoice side effect already applied, skipping",
				"command_id", cmd.ID,
				"scope_id", scopeID,
			)
			return e.commandLog.MarkCommandApplied(ctx, cmd.ID)
		}
	}

	switch cmd.Type {
	case domain.CommandMarkInvoicePaid:
		err = e.markInvoicePaid(ctx, cmd)
	case domain.CommandFlagForAdminReview:
		err = e.flagForReview(ctx, cmd)
	case domain.CommandDecrementStock:
		err = e.inventory.DecrementStockForInvoice(ctx, cmd.InvoiceID)
	case domain.CommandNotifyCustomer:
		err = e.notifier.Notify(ctx, cmd.InvoiceID, cmd.Kind, notificationPayload(cmd))
	default:
		return fmt.Errorf("unknown command type: %s", cmd.Type)
	}

	if err != nil {
		return err
	}

	if scoped {
		if err := e.commandLog.MarkCommandApplied(ctx, scopeID); err != nil {
			return err
		}
	}

	return e.commandLog.MarkCommandApplied(ctx, cmd.ID)
}

// invoiceScopeID returns the invoice-granularity dedup key for side effects
// that must not repeat across attempts: stock decrement and the approved
// notification. Rejected, pending-review and partial notifications stay
// per-attempt and get no scope key.
func invoiceScopeID(cmd domain.Command) (string, bool) {
	switch {
	case cmd.Type == domain.CommandDecrementStock:
		return "invoice:" + cmd.InvoiceID + ":" + string(cmd.Type), true
	case cmd.Type == domain.CommandNotifyCustomer && cmd.Kind == domain.NotifyApproved:
		return "invoice:" + cmd.InvoiceID + ":" + string(cmd.Type) + ":" + string(cmd.Kind), true
	}
	return "", false
}

// markInvoicePaid re-reads the invoice under the lock; the status must still
// be payable. A concurrent approval that already flipped it wins, and this
// command degrades to a no-op.
func (e *Executor) markInvoicePaid(ctx context.Context, cmd domain.Command) error {
	invoice, err := e.invoices.GetInvoice(ctx, cmd.InvoiceID)
	if err != nil {
		return err
	}

	if !invoice.Status.Payable() && invoice.Status != domain.InvoiceStatusUnderReview {
		e.logger.Warn(ctx, "Invoice no longer payable, skipping mark-paid",
			"command_id", cmd.ID,
			"status", invoice.Status,
		)
		return nil
	}

	return e.invoices.UpdateInvoiceStatus(ctx, cmd.InvoiceID, domain.InvoiceStatusPaid)
}

func (e *Executor) flagForReview(ctx context.Context, cmd domain.Command) error {
	invoice, err := e.invoices.GetInvoice(ctx, cmd.InvoiceID)
	if err != nil {
		return err
	}

	// A paid or cancelled invoice is never pulled back into review.
	if !invoice.Status.Payable() {
		return nil
	}

	return e.invoices.UpdateInvoiceStatus(ctx, cmd.InvoiceID, domain.InvoiceStatusUnderReview)
}

func (e *Executor) acquireInvoiceLock(invoiceID string) *invoiceLock {
	e.locksMu.Lock()
	lock, ok := e.locks[invoiceID]
	if !ok {
		lock = &invoiceLock{}
		e.locks[invoiceID] = lock
	}
	lock.refs++
	e.locksMu.Unlock()

	lock.mu.Lock()
	return lock
}

func (e *Executor) releaseInvoiceLock(invoiceID string, lock *invoiceLock) {
	lock.mu.Unlock()

	e.locksMu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(e.locks, invoiceID)
	}
	e.locksMu.Unlock()
}

func notificationPayload(cmd domain.Command) map[string]string {
	payload := map[string]string{
		"attempt_id": cmd.AttemptID,
	}
	if cmd.Reason != "" {
		payload["reason"] = cmd.Reason
	}
	if cmd.Received != nil {
		payload["received_amount"] = cmd.Received.String()
	}
	if cmd.Expected != nil {
		payload["expected_amount"] = cmd.Expected.String()
	}
	return payload
}
