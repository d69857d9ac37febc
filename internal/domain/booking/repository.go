package booking

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for the booking history.
type Repository interface {
	// FindByID retrieves a booking by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// ListByRoom retrieves every booking ever made for a room, newest
	// first. Checked-out bookings are included; history is never pruned.
	ListByRoom(ctx context.Context, roomNumber string) ([]*Booking, error)

	// ListByGuest retrieves a guest's bookings, newest first.
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*Booking, error)

	// List retrieves all bookings, newest first.
	List(ctx context.Context) ([]*Booking, error)

	// Save persists a new booking.
	Save(ctx context.Context, b *Booking) error

	// Update persists checkout changes to an existing booking.
	Update(ctx context.Context, b *Booking) error
}
