package audit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRecord(t *testing.T) {
	event := Event{
		EventID:     "evt-1",
		ScreeningID: "scr-42",
		ShipmentID:  "shp-7",
		Action:      ActionStatusChanged,
		Actor:       "officer-3",
		OccurredAt:  time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC),
		Detail:      map[string]string{"from": "pending", "to": "in_review"},
	}

	record, err := encodeRecord("complyd.audit", event)
	require.NoError(t, err)

	assert.Equal(t, "complyd.audit", record.Topic)
	assert.Equal(t, []byte("scr-42"), record.Key,
		"events for one screening must land on one partition")

	var decoded Event
	require.NoError(t, json.Unmarshal(record.Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestEncodeRecordEmptyScreeningID(t *testing.T) {
	record, err := encodeRecord("complyd.audit", NewEvent(ActionShipmentRecomputed, ""))
	require.NoError(t, err)
	assert.Empty(t, record.Key)
}
