package commandbus

import (
	"context"

	"github.com/adsalert/payverify-be/internal/domain"
)

type Consumer interface {
	Handle(ctx context.Context, cmd domain.Command) error
	WorkerCount() int
}
