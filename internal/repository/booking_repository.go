package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/ninepines/service-booking/internal/domain"
	bookingDomain "github.com/ninepines/service-booking/internal/domain/booking"
)

// BookingRepositoryImpl is the in-memory implementation of
// booking.Repository. Bookings accumulate for the whole process run; the
// overlap check depends on the full history staying put.
type BookingRepositoryImpl struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*bookingDomain.Booking
}

// NewBookingRepository creates an empty in-memory booking history.
func NewBookingRepository() *BookingRepositoryImpl {
	return &BookingRepositoryImpl{
		bookings: make(map[uuid.UUID]*bookingDomain.Booking),
	}
}

// FindByID retrieves a booking by its unique ID.
func (r *BookingRepositoryImpl) FindByID(_ context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("Booking", id.String())
	}
	return b, nil
}

// ListByRoom retrieves every booking ever made for a room, newest first.
func (r *BookingRepositoryImpl) ListByRoom(_ context.Context, roomNumber string) ([]*bookingDomain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filterLocked(func(b *bookingDomain.Booking) bool {
		return b.RoomNumber() == roomNumber
	}), nil
}

// ListByGuest retrieves a guest's bookings, newest first.
func (r *BookingRepositoryImpl) ListByGuest(_ context.Context, guestID uuid.UUID) ([]*bookingDomain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filterLocked(func(b *bookingDomain.Booking) bool {
		return b.GuestID() == guestID
	}), nil
}

// List retrieves all bookings, newest first.
func (r *BookingRepositoryImpl) List(_ context.Context) ([]*bookingDomain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filterLocked(func(*bookingDomain.Booking) bool { return true }), nil
}

// Save persists a new booking.
func (r *BookingRepositoryImpl) Save(_ context.Context, b *bookingDomain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[b.ID()]; exists {
		return domain.NewConflictError("booking " + b.ID().String() + " already exists")
	}
	r.bookings[b.ID()] = b
	return nil
}

// Update persists checkout changes to an existing booking.
func (r *BookingRepositoryImpl) Update(_ context.Context, b *bookingDomain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[b.ID()]; !exists {
		return domain.NewNotFoundError("Booking", b.ID().String())
	}
	r.bookings[b.ID()] = b
	return nil
}

func (r *BookingRepositoryImpl) filterLocked(keep func(*bookingDomain.Booking) bool) []*bookingDomain.Booking {
	var result []*bookingDomain.Booking
	for _, b := range r.bookings {
		if keep(b) {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return result
}
