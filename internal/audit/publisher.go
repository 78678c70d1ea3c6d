package audit

import (
	"context"
	"log/slog"
	"sync"
)

// Publisher delivers audit events to a sink. Implementations must not
// block the calling workflow on sink outages longer than their own
// delivery timeout.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Recorder keeps events in memory. Used in tests and in deployments
// without a broker configured.
type Recorder struct {
	mu     sync.RWMutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a snapshot of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// LoggingPublisher wraps another publisher and logs delivery failures
// instead of propagating them; the audit trail is best-effort from the
// workflow's point of view.
type LoggingPublisher struct {
	next   Publisher
	logger *slog.Logger
}

func NewLoggingPublisher(next Publisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

func (p *LoggingPublisher) Publish(ctx context.Context, event Event) error {
	if err := p.next.Publish(ctx, event); err != nil {
		p.logger.Error("audit event delivery failed",
			"event_id", event.EventID,
			"action", string(event.Action),
			"error", err)
	}
	return nil
}
