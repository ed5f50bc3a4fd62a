package event

import (
	"context"

	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LoggingHandler writes one structured line per domain event
type LoggingHandler struct {
	fallback *zap.Logger
}

// NewLoggingHandler creates a handler that logs to the request logger when one is
// in the context, and to fallback otherwise.
func NewLoggingHandler(fallback *zap.Logger) *LoggingHandler {
	if fallback == nil {
		fallback = zap.NewNop()
	}
	return &LoggingHandler{fallback: fallback}
}

// Handle implements shared.EventHandler
func (h *LoggingHandler) Handle(ctx context.Context, ev shared.DomainEvent) error {
	log := h.fallback
	if l, ok := logger.Attached(ctx); ok {
		log = l
	}
	log.Info("Domain event",
		zap.String("event_type", ev.EventType()),
		zap.String("event_id", ev.EventID().String()),
		zap.String("aggregate_type", ev.AggregateType()),
		zap.String("aggregate_id", ev.AggregateID().String()),
		zap.Time("occurred_at", ev.OccurredAt()),
	)
	return nil
}

// EventTypes returns nil: every event is logged
func (h *LoggingHandler) EventTypes() []string { return nil }
