package notify

import (
	"context"

	"github.com/adsalert/payverify-be/internal/domain"
	"github.com/adsalert/payverify-be/pkg/logger"
)

// LogNotifier writes customer notifications into the structured log stream.
// Delivery transports (Telegram, email) hang off this interface elsewhere;
// the verification engine only cares that a notification was handed over.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(ctx context.Context, invoiceID string, kind domain.NotificationKind, payload map[string]string) error {
	fields := []interface{}{
		"invoice_id", invoiceID,
		"kind", kind,
	}
	for k, v := range payload {
		fields = append(fields, k, v)
	}

	n.logger.Info(ctx, "Customer notification", fields...)
	return nil
}
