package event

import (
	"sync"

	"go.uber.org/zap"

	"github.com/muebleria/backend/internal/domain/shared"
)

// Handler processes a domain event. Handlers must not block; slow work
// belongs in the handler's own goroutine.
type Handler interface {
	Handle(event shared.DomainEvent)
	EventTypes() []string
}

// Bus is an in-memory publisher that fans events out to subscribed
// handlers. Publication happens after the producing transaction has
// committed, so handlers observe durable state.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	catchAll []Handler
	logger   *zap.Logger
}

// NewBus creates an empty event bus
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for the event types it declares. A
// handler declaring no types receives every event.
func (b *Bus) Subscribe(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	types := handler.EventTypes()
	if len(types) == 0 {
		b.catchAll = append(b.catchAll, handler)
		return
	}
	for _, t := range types {
		b.handlers[t] = append(b.handlers[t], handler)
	}
}

// Publish dispatches events to all matching handlers. A panicking
// handler is logged and skipped so one subscriber cannot take down
// the request that produced the event.
func (b *Bus) Publish(events ...shared.DomainEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, event := range events {
		for _, h := range b.handlers[event.EventType()] {
			b.dispatch(h, event)
		}
		for _, h := range b.catchAll {
			b.dispatch(h, event)
		}
	}
}

func (b *Bus) dispatch(handler Handler, event shared.DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("event_type", event.EventType()),
				zap.Any("panic", r),
			)
		}
	}()
	handler.Handle(event)
}

var _ shared.EventPublisher = (*Bus)(nil)
