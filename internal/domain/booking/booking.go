package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/ninepines/service-booking/internal/domain"
	"github.com/ninepines/service-booking/internal/domain/room"
)

// Status represents the state of a booking. Reservation and check-in are
// collapsed into one transition: an accepted booking is immediately checked
// in.
type Status string

const (
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
)

// Booking is the aggregate for a single reservation. Room pricing is
// snapshotted at acceptance so later catalog changes cannot alter a stay's
// cost. Bookings are never deleted; history feeds future overlap checks.
type Booking struct {
	id           uuid.UUID
	guestID      uuid.UUID
	roomNumber   string
	roomType     room.Type
	nightlyRate  int64
	extraBedRate int64
	stay         StayInterval
	extraBeds    int
	baseCost     float64
	surcharge    float64
	discount     float64
	totalCost    float64
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// New accepts a booking for a room over a stay interval. The base cost is
// computed once here:
//
//	nightlyRate*nights + extraBedRate*extraBeds*nights
func New(guestID uuid.UUID, rm *room.Room, stay StayInterval, extraBeds int) (*Booking, error) {
	if extraBeds < 0 {
		return nil, domain.NewValidationError("extra-bed count must not be negative")
	}

	nights := stay.Nights()
	baseCost := float64(rm.NightlyRate()*int64(nights) + rm.ExtraBedRate()*int64(extraBeds)*int64(nights))

	now := time.Now().UTC()
	return &Booking{
		id:           uuid.New(),
		guestID:      guestID,
		roomNumber:   rm.Number(),
		roomType:     rm.RoomType(),
		nightlyRate:  rm.NightlyRate(),
		extraBedRate: rm.ExtraBedRate(),
		stay:         stay,
		extraBeds:    extraBeds,
		baseCost:     baseCost,
		totalCost:    baseCost,
		status:       StatusCheckedIn,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (b *Booking) ID() uuid.UUID { return b.id }
func (b *Booking) GuestID() uuid.UUID { return b.guestID }
func (b *Booking) RoomNumber() string { return b.roomNumber }
func (b *Booking) RoomType() room.Type { return b.roomType }
func (b *Booking) NightlyRate() int64 { return b.nightlyRate }
func (b *Booking) ExtraBedRate() int64 { return b.extraBedRate }
func (b *Booking) Stay() StayInterval { return b.stay }
func (b *Booking) ExtraBeds() int { return b.extraBeds }
func (b *Booking) BaseCost() float64 { return b.baseCost }
func (b *Booking) Surcharge() float64 { return b.surcharge }
func (b *Booking) Discount() float64 { return b.discount }
func (b *Booking) TotalCost() float64 { return b.totalCost }
func (b *Booking) Status() Status { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Nights is the whole-day length of the booked stay.
func (b *Booking) Nights() int {
	return b.stay.Nights()
}

// CheckOut completes the booking at the actual checkout instant, recording
// the billing outcome. The stored stay interval is extended (or shortened)
// to the actual instant so overlap checks read the real occupied range.
func (b *Booking) CheckOut(actual time.Time, surcharge, discountPercent, total float64) error {
	if b.status != StatusCheckedIn {
		return domain.NewInvalidStateError(string(b.status), string(StatusCheckedOut))
	}

	stay, err := b.stay.WithCheckOut(actual)
	if err != nil {
		return err
	}

	b.stay = stay
	b.surcharge = surcharge
	b.discount = discountPercent
	b.totalCost = total
	b.status = StatusCheckedOut
	b.updatedAt = time.Now().UTC()
	return nil
}
