package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, inDate, inTime, outDate, outTime string) StayInterval {
	t.Helper()
	stay, err := ParseStay(inDate, inTime, outDate, outTime)
	require.NoError(t, err)
	return stay
}

func TestParseStay(t *testing.T) {
	stay := mustStay(t, "16:04:2024", "12:00", "18:04:2024", "12:00")

	assert.Equal(t, time.Date(2024, time.April, 16, 12, 0, 0, 0, time.UTC), stay.CheckIn())
	assert.Equal(t, time.Date(2024, time.April, 18, 12, 0, 0, 0, time.UTC), stay.CheckOut())
}

func TestParseStay_BadInput(t *testing.T) {
	cases := []struct {
		name    string
		in      [4]string
	}{
		{"iso date", [4]string{"2024-04-16", "12:00", "18:04:2024", "12:00"}},
		{"bad time", [4]string{"16:04:2024", "noon", "18:04:2024", "12:00"}},
		{"checkout before checkin", [4]string{"18:04:2024", "12:00", "16:04:2024", "12:00"}},
		{"zero length stay", [4]string{"16:04:2024", "12:00", "16:04:2024", "12:00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseStay(tc.in[0], tc.in[1], tc.in[2], tc.in[3])
			assert.Error(t, err)
		})
	}
}

func TestNights_IgnoresTimeOfDay(t *testing.T) {
	cases := []struct {
		name   string
		stay   StayInterval
		nights int
	}{
		{"noon to noon across two dates", mustStay(t, "16:04:2024", "12:00", "18:04:2024", "12:00"), 2},
		{"late arrival early departure", mustStay(t, "16:04:2024", "23:00", "18:04:2024", "01:00"), 2},
		{"single night", mustStay(t, "16:04:2024", "12:00", "17:04:2024", "09:00"), 1},
		{"month boundary", mustStay(t, "30:04:2024", "12:00", "02:05:2024", "12:00"), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.nights, tc.stay.Nights())
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := mustStay(t, "16:04:2024", "12:00", "18:04:2024", "12:00")

	cases := []struct {
		name    string
		other   StayInterval
		overlap bool
	}{
		{"identical", mustStay(t, "16:04:2024", "12:00", "18:04:2024", "12:00"), true},
		{"contained", mustStay(t, "16:04:2024", "18:00", "17:04:2024", "10:00"), true},
		{"straddles start", mustStay(t, "15:04:2024", "12:00", "17:04:2024", "12:00"), true},
		{"straddles end", mustStay(t, "17:04:2024", "12:00", "19:04:2024", "12:00"), true},
		{"back to back is free", mustStay(t, "18:04:2024", "12:00", "20:04:2024", "12:00"), false},
		{"entirely after", mustStay(t, "20:04:2024", "12:00", "22:04:2024", "12:00"), false},
		{"entirely before", mustStay(t, "10:04:2024", "12:00", "12:04:2024", "12:00"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlap, base.Overlaps(tc.other))
			// Overlap is symmetric.
			assert.Equal(t, tc.overlap, tc.other.Overlaps(base))
		})
	}
}

func TestSameDayConflict(t *testing.T) {
	morning := mustStay(t, "16:04:2024", "08:00", "16:04:2024", "11:00")
	noonTouch := mustStay(t, "16:04:2024", "11:00", "17:04:2024", "10:00")
	afternoon := mustStay(t, "16:04:2024", "14:00", "17:04:2024", "10:00")
	nextDay := mustStay(t, "17:04:2024", "08:00", "18:04:2024", "08:00")

	// Touching endpoints on the same check-in date still conflict.
	assert.True(t, morning.SameDayConflict(noonTouch))
	assert.True(t, noonTouch.SameDayConflict(morning))

	// Strictly apart on the same date is fine.
	assert.False(t, morning.SameDayConflict(afternoon))
	assert.False(t, afternoon.SameDayConflict(morning))

	// Different check-in dates never trip the same-day rule.
	assert.False(t, morning.SameDayConflict(nextDay))
}

func TestWithCheckOut(t *testing.T) {
	stay := mustStay(t, "16:04:2024", "12:00", "18:04:2024", "12:00")

	late := time.Date(2024, time.April, 19, 15, 0, 0, 0, time.UTC)
	extended, err := stay.WithCheckOut(late)
	require.NoError(t, err)
	assert.Equal(t, late, extended.CheckOut())
	assert.Equal(t, stay.CheckIn(), extended.CheckIn())

	// Cannot move the checkout before the check-in.
	_, err = stay.WithCheckOut(stay.CheckIn().Add(-time.Hour))
	assert.Error(t, err)
}

func TestFormat_RoundTrips(t *testing.T) {
	stay := mustStay(t, "16:04:2024", "12:00", "18:04:2024", "09:30")

	assert.Equal(t, "16:04:2024 12:00", stay.FormatCheckIn())
	assert.Equal(t, "18:04:2024 09:30", stay.FormatCheckOut())
}
