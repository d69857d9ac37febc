package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudEvent_RoundTrip(t *testing.T) {
	payload := BookingCreatedEvent{
		BookingID:  uuid.New(),
		GuestID:    uuid.New(),
		GuestName:  "Batman",
		RoomNumber: "101",
		RoomType:   "S",
		Nights:     2,
		BaseCost:   24000,
		OccurredAt: time.Now().UTC(),
	}

	ce, err := NewCloudEvent("service-booking", BookingCreated, payload)
	require.NoError(t, err)
	assert.Equal(t, "1.0", ce.SpecVersion)
	assert.Equal(t, BookingCreated, ce.Type)
	assert.NotEmpty(t, ce.ID)

	raw, err := json.Marshal(ce)
	require.NoError(t, err)

	parsed, err := ParseCloudEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, ce.ID, parsed.ID)

	var got BookingCreatedEvent
	require.NoError(t, parsed.ParseData(&got))
	assert.Equal(t, payload.BookingID, got.BookingID)
	assert.Equal(t, "Batman", got.GuestName)
	assert.Equal(t, float64(24000), got.BaseCost)
}

func TestParseCloudEvent_BadJSON(t *testing.T) {
	_, err := ParseCloudEvent([]byte("{not json"))
	assert.Error(t, err)
}
