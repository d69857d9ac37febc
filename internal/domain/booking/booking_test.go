package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninepines/service-booking/internal/domain"
	"github.com/ninepines/service-booking/internal/domain/room"
)

func newTestRoom(t *testing.T) *room.Room {
	t.Helper()
	rm, err := room.New("101", room.TypeStandard, 10000)
	require.NoError(t, err)
	return rm
}

func TestNew_BaseCost(t *testing.T) {
	rm := newTestRoom(t)
	stay := mustStay(t, "16:04:2024", "12:00", "18:04:2024", "12:00")

	// 2 nights at 10000 plus one extra bed at 2000 per night.
	b, err := New(uuid.New(), rm, stay, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, b.Nights())
	assert.Equal(t, float64(24000), b.BaseCost())
	assert.Equal(t, b.BaseCost(), b.TotalCost())
	assert.Equal(t, StatusCheckedIn, b.Status())
}

func TestNew_NoExtraBeds(t *testing.T) {
	rm := newTestRoom(t)
	stay := mustStay(t, "16:04:2024", "12:00", "18:04:2024", "12:00")

	b, err := New(uuid.New(), rm, stay, 0)
	require.NoError(t, err)
	assert.Equal(t, float64(20000), b.BaseCost())
}

func TestNew_RejectsNegativeExtraBeds(t *testing.T) {
	rm := newTestRoom(t)
	stay := mustStay(t, "16:04:2024", "12:00", "18:04:2024", "12:00")

	_, err := New(uuid.New(), rm, stay, -1)
	assert.True(t, domain.IsKind(err, domain.ErrValidation))
}

func TestNew_SnapshotsRoomPricing(t *testing.T) {
	rm := newTestRoom(t)
	stay := mustStay(t, "16:04:2024", "12:00", "18:04:2024", "12:00")

	b, err := New(uuid.New(), rm, stay, 0)
	require.NoError(t, err)

	assert.Equal(t, rm.Number(), b.RoomNumber())
	assert.Equal(t, rm.RoomType(), b.RoomType())
	assert.Equal(t, int64(10000), b.NightlyRate())
	assert.Equal(t, int64(2000), b.ExtraBedRate())
}

func TestCheckOut_SettlesBooking(t *testing.T) {
	rm := newTestRoom(t)
	stay := mustStay(t, "16:04:2024", "12:00", "18:04:2024", "12:00")

	b, err := New(uuid.New(), rm, stay, 0)
	require.NoError(t, err)

	actual := time.Date(2024, time.April, 19, 15, 0, 0, 0, time.UTC)
	require.NoError(t, b.CheckOut(actual, 11250, 5, 29687.5))

	assert.Equal(t, StatusCheckedOut, b.Status())
	assert.Equal(t, actual, b.Stay().CheckOut())
	assert.Equal(t, float64(11250), b.Surcharge())
	assert.Equal(t, float64(5), b.Discount())
	assert.Equal(t, 29687.5, b.TotalCost())
}

func TestCheckOut_Twice(t *testing.T) {
	rm := newTestRoom(t)
	stay := mustStay(t, "16:04:2024", "12:00", "18:04:2024", "12:00")

	b, err := New(uuid.New(), rm, stay, 0)
	require.NoError(t, err)

	actual := stay.CheckOut()
	require.NoError(t, b.CheckOut(actual, 0, 0, b.BaseCost()))

	err = b.CheckOut(actual, 0, 0, b.BaseCost())
	assert.True(t, domain.IsKind(err, domain.ErrInvalidState))
}
