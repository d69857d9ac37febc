package events

import (
	"time"

	"github.com/google/uuid"
)

// Topic and event type names for the booking event stream.
const (
	TopicBookingEvents = "booking.events"

	BookingCreated    = "hotel.booking.created"
	BookingCheckedOut = "hotel.booking.checked_out"
)

// BookingCreatedEvent announces an accepted booking (guest checked in).
type BookingCreatedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	GuestID    uuid.UUID `json:"guest_id"`
	GuestName  string    `json:"guest_name"`
	RoomNumber string    `json:"room_number"`
	RoomType   string    `json:"room_type"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Nights     int       `json:"nights"`
	ExtraBeds  int       `json:"extra_beds"`
	BaseCost   float64   `json:"base_cost"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingCheckedOutEvent announces a completed stay with its final bill.
type BookingCheckedOutEvent struct {
	BookingID       uuid.UUID `json:"booking_id"`
	GuestID         uuid.UUID `json:"guest_id"`
	RoomNumber      string    `json:"room_number"`
	LateSurcharge   float64   `json:"late_surcharge"`
	DiscountPercent float64   `json:"discount_percent"`
	TotalCost       float64   `json:"total_cost"`
	OccurredAt      time.Time `json:"occurred_at"`
}
