package commandbus

import (
	"context"
	"errors"
	"sync"

	"github.com/adsalert/payverify-be/internal/domain"
	"github.com/adsalert/payverify-be/pkg/logger"
	"github.com/adsalert/payverify-be/pkg/retry"
)

// ErrDispatcherClosed is returned by Emit after Shutdown has begun.
var ErrDispatcherClosed = errors.New("command dispatcher closed")

// Dispatcher fans side-effect commands out to consumer worker pools. It
// implements domain.CommandSink for the verification orchestrator.
type Dispatcher struct {
	ch        chan domain.Command
	consumers []Consumer
	mu        sync.Mutex
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	logger    *logger.Logger
	started   bool
	closed    bool
	maxRetry  int
}

type Config struct {
	ChannelBuffer int
	MaxRetries    int
}

func New(log *logger.Logger, cfg *Config) *Dispatcher {
	if cfg == nil {
		cfg = &Config{
			ChannelBuffer: 256,
			MaxRetries:    5,
		}
	}

	return &Dispatcher{
		ch:       make(chan domain.Command, cfg.ChannelBuffer),
		logger:   log,
		maxRetry: cfg.MaxRetries,
	}
}

func (d *Dispatcher) Subscribe(consumer Consumer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.consumers = append(d.consumers, consumer)
}

func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return nil
	}

	d.ctx, d.cancel = context.WithCancel(ctx)

	for _, consumer := range d.consumers {
		workerCount := consumer.WorkerCount()
		d.logger.Info(d.ctx, "Starting command workers",
			"worker_count", workerCount,
		)

		for i := 0; i < workerCount; i++ {
			d.wg.Add(1)
			go d.worker(d.ctx, consumer, i)
		}
	}

	d.started = true
	d.logger.Info(d.ctx, "Command dispatcher started")

	return nil
}

func (d *Dispatcher) worker(ctx context.Context, consumer Consumer, workerID int) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug(ctx, "Command worker stopping", "worker_id", workerID)
			return
		case cmd, ok := <-d.ch:
			if !ok {
				return
			}

			d.process(ctx, cmd, consumer, workerID)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, cmd domain.Command, consumer Consumer, workerID int) {
	cmdCtx := logger.WithInvoiceID(ctx, cmd.InvoiceID)

	err := retry.Do(cmdCtx, func() error {
		return consumer.Handle(cmdCtx, cmd)
	}, retry.WithMaxAttempts(d.maxRetry))

	if err != nil {
		d.logger.Error(cmdCtx, "Command failed after retries",
			"command_id", cmd.ID,
			"command_type", cmd.Type,
			"worker_id", workerID,
			"error", err,
		)
		return
	}

	d.logger.Debug(cmdCtx, "Command executed",
		"command_id", cmd.ID,
		"command_type", cmd.Type,
		"worker_id", workerID,
	)
}

// Emit enqueues a command. Unlike a best-effort event feed, side-effect
// commands must not be lost, so a full channel blocks until there is room or
// the context ends. Callers must stop emitting before Shutdown; the server
// shutdown ordering (HTTP first, bus second) guarantees that.
func (d *Dispatcher) Emit(ctx context.Context, cmd domain.Command) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrDispatcherClosed
	}
	d.mu.Unlock()

	select {
	case d.ch <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown closes the channel and lets the workers drain what is still
// buffered; the worker context is only cancelled on the timeout path, so
// accepted commands are not abandoned.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.logger.Info(ctx, "Shutting down command dispatcher")

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.ch)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if d.cancel != nil {
			d.cancel()
		}
		d.logger.Info(ctx, "Command dispatcher shutdown complete")
		return nil
	case <-ctx.Done():
		if d.cancel != nil {
			d.cancel()
		}
		d.logger.Warn(ctx, "Command dispatcher shutdown timeout")
		return ctx.Err()
	}
}
