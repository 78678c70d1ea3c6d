// Package audit records every compliance-relevant mutation as an immutable
// event. Events flow to a pluggable sink; production ships them to Kafka,
// tests and development capture them in memory.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action identifies what happened to a screening record.
type Action string

const (
	ActionScreeningCreated    Action = "screening_created"
	ActionRiskScoresUpdated   Action = "risk_scores_updated"
	ActionWatchlistScreened   Action = "watchlist_screened"
	ActionStatusChanged       Action = "status_changed"
	ActionEnhancedDDCompleted Action = "enhanced_dd_completed"
	ActionShipmentRecomputed  Action = "shipment_recomputed"
)

// Event is one audit trail entry.
type Event struct {
	EventID     string            `json:"event_id"`
	ScreeningID string            `json:"screening_id,omitempty"`
	ShipmentID  string            `json:"shipment_id,omitempty"`
	Action      Action            `json:"action"`
	Actor       string            `json:"actor,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
	Detail      map[string]string `json:"detail,omitempty"`
}

// NewEvent stamps an identity and timestamp onto a new audit entry.
func NewEvent(action Action, actor string) Event {
	return Event{
		EventID:    uuid.NewString(),
		Action:     action,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}
}
