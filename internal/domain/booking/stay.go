package booking

import (
	"fmt"
	"time"

	"github.com/ninepines/service-booking/internal/domain"
)

// Wire layouts for booking inputs. Dates arrive as dd:mm:yyyy and times as
// 24-hour HH:mm, matching the front-desk forms.
const (
	DateLayout = "02:01:2006"
	TimeLayout = "15:04"
)

// StayInterval is the half-open time range a room is occupied by one
// booking, from check-in instant to check-out instant.
type StayInterval struct {
	checkIn  time.Time
	checkOut time.Time
}

// ParseStay combines separately supplied date and time strings into a stay
// interval. A checkout instant not strictly after check-in is rejected, so
// a zero- or negative-night stay can never be constructed.
func ParseStay(checkInDate, checkInTime, checkOutDate, checkOutTime string) (StayInterval, error) {
	checkIn, err := parseDateTime(checkInDate, checkInTime)
	if err != nil {
		return StayInterval{}, domain.NewValidationError("check-in: " + err.Error())
	}

	checkOut, err := parseDateTime(checkOutDate, checkOutTime)
	if err != nil {
		return StayInterval{}, domain.NewValidationError("check-out: " + err.Error())
	}

	return NewStayInterval(checkIn, checkOut)
}

// ParseDateTime combines one date string and one time string into an
// instant, e.g. an actual checkout moment supplied at the desk.
func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	t, err := parseDateTime(dateStr, timeStr)
	if err != nil {
		return time.Time{}, domain.NewValidationError(err.Error())
	}
	return t, nil
}

// NewStayInterval builds a stay from already-parsed instants.
func NewStayInterval(checkIn, checkOut time.Time) (StayInterval, error) {
	if !checkOut.After(checkIn) {
		return StayInterval{}, domain.NewValidationError("check-out must be after check-in")
	}
	return StayInterval{checkIn: checkIn, checkOut: checkOut}, nil
}

func parseDateTime(dateStr, timeStr string) (time.Time, error) {
	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q does not match dd:mm:yyyy", dateStr)
	}

	clock, err := time.Parse(TimeLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q does not match HH:mm", timeStr)
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}

func (s StayInterval) CheckIn() time.Time { return s.checkIn }
func (s StayInterval) CheckOut() time.Time { return s.checkOut }

// Nights is the whole calendar-day difference between the check-out and
// check-in dates. Time of day does not participate: a noon-to-noon stay
// across two dates is two nights.
func (s StayInterval) Nights() int {
	in := truncateToDate(s.checkIn)
	out := truncateToDate(s.checkOut)
	return int(out.Sub(in).Hours() / 24)
}

// Overlaps applies the standard half-open interval test: two stays overlap
// unless one lies entirely before the other begins.
func (s StayInterval) Overlaps(other StayInterval) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// SameDayConflict is the stricter rule for stays beginning on the same
// calendar date (same-day multiple bookings): the time-of-day ranges must
// lie strictly apart, so even back-to-back times on one date conflict.
func (s StayInterval) SameDayConflict(other StayInterval) bool {
	if !truncateToDate(s.checkIn).Equal(truncateToDate(other.checkIn)) {
		return false
	}
	return !(other.checkOut.Before(s.checkIn) || other.checkIn.After(s.checkOut))
}

// WithCheckOut replaces the checkout instant, keeping the stored interval
// the single source of truth after a late or early checkout.
func (s StayInterval) WithCheckOut(checkOut time.Time) (StayInterval, error) {
	return NewStayInterval(s.checkIn, checkOut)
}

// FormatCheckIn renders the check-in instant in wire layout.
func (s StayInterval) FormatCheckIn() string {
	return s.checkIn.Format(DateLayout + " " + TimeLayout)
}

// FormatCheckOut renders the check-out instant in wire layout.
func (s StayInterval) FormatCheckOut() string {
	return s.checkOut.Format(DateLayout + " " + TimeLayout)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
