package event

import (
	"go.uber.org/zap"

	"github.com/muebleria/backend/internal/domain/shared"
)

// AuditHandler writes every published domain event to the structured
// log, giving operators a trail of order and payment state changes.
type AuditHandler struct {
	logger *zap.Logger
}

// NewAuditHandler creates a handler that logs all events
func NewAuditHandler(logger *zap.Logger) *AuditHandler {
	return &AuditHandler{logger: logger}
}

// EventTypes returns nil so the handler receives every event
func (h *AuditHandler) EventTypes() []string {
	return nil
}

// Handle logs the event
func (h *AuditHandler) Handle(event shared.DomainEvent) {
	h.logger.Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
}
