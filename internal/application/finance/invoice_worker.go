package finance

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	tradeapp "github.com/muebleria/backend/internal/application/trade"
)

// InvoiceWorker generates invoices asynchronously: payment verification
// enqueues the completed order and returns, the worker issues the fiscal
// document in the background. Generation is idempotent, so a crash
// between completion and invoicing is recovered by re-enqueueing.
type InvoiceWorker struct {
	service *InvoiceService
	logger  *zap.Logger

	queue chan uuid.UUID
	wg    sync.WaitGroup
	once  sync.Once
}

// NewInvoiceWorker creates a worker with the given queue capacity
func NewInvoiceWorker(service *InvoiceService, logger *zap.Logger, queueSize int) *InvoiceWorker {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &InvoiceWorker{
		service: service,
		logger:  logger,
		queue:   make(chan uuid.UUID, queueSize),
	}
}

// Start launches the worker goroutine. It drains the queue until Stop is
// called or the context is cancelled.
func (w *InvoiceWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case orderID, ok := <-w.queue:
				if !ok {
					return
				}
				w.generate(ctx, orderID)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop closes the queue and waits for in-flight generation to finish
func (w *InvoiceWorker) Stop() {
	w.once.Do(func() {
		close(w.queue)
	})
	w.wg.Wait()
}

// Enqueue hands an order to the worker. If the queue is full the order
// is dropped with a warning; the invoice can be generated on demand
// later since generation is idempotent.
func (w *InvoiceWorker) Enqueue(orderID uuid.UUID) {
	select {
	case w.queue <- orderID:
	default:
		w.logger.Warn("invoice queue full, dropping order",
			zap.String("order_id", orderID.String()))
	}
}

func (w *InvoiceWorker) generate(ctx context.Context, orderID uuid.UUID) {
	invoice, err := w.service.GenerateForOrder(ctx, orderID)
	if err != nil {
		w.logger.Error("invoice generation failed",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
		return
	}
	w.logger.Info("invoice generated",
		zap.String("order_id", orderID.String()),
		zap.String("control_number", invoice.ControlNumber))
}

var _ tradeapp.InvoiceGenerator = (*InvoiceWorker)(nil)
