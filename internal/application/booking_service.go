package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ninepines/service-booking/internal/domain"
	"github.com/ninepines/service-booking/internal/domain/billing"
	bookingDomain "github.com/ninepines/service-booking/internal/domain/booking"
	guestDomain "github.com/ninepines/service-booking/internal/domain/guest"
	roomDomain "github.com/ninepines/service-booking/internal/domain/room"
	"github.com/ninepines/service-booking/internal/events"
)

// GuestInput carries the guest details supplied with a booking.
type GuestInput struct {
	Name          string `json:"name" binding:"required"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

// BookRoomRequest is the DTO for accepting a booking. Either a concrete
// room number or a room type must be given; dates are dd:mm:yyyy, times
// 24-hour HH:mm.
type BookRoomRequest struct {
	Guest        GuestInput `json:"guest" binding:"required"`
	RoomNumber   string     `json:"room_number"`
	RoomType     string     `json:"room_type"`
	CheckInDate  string     `json:"check_in_date" binding:"required"`
	CheckInTime  string     `json:"check_in_time" binding:"required"`
	CheckOutDate string     `json:"check_out_date" binding:"required"`
	CheckOutTime string     `json:"check_out_time" binding:"required"`
	ExtraBeds    int        `json:"extra_beds" binding:"omitempty,gte=0"`
}

// CheckOutRequest carries the actual checkout moment.
type CheckOutRequest struct {
	CheckOutDate string `json:"checkout_date" binding:"required"`
	CheckOutTime string `json:"checkout_time" binding:"required"`
}

// BookingDTO is the API response representation of a booking.
type BookingDTO struct {
	ID              uuid.UUID `json:"id"`
	GuestID         uuid.UUID `json:"guest_id"`
	GuestName       string    `json:"guest_name"`
	RoomNumber      string    `json:"room_number"`
	RoomType        string    `json:"room_type"`
	RoomTypeName    string    `json:"room_type_name"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	Nights          int       `json:"nights"`
	ExtraBeds       int       `json:"extra_beds"`
	BaseCost        float64   `json:"base_cost"`
	LateSurcharge   float64   `json:"late_surcharge"`
	DiscountPercent float64   `json:"discount_percent"`
	TotalCost       float64   `json:"total_cost"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// StatsDTO holds occupancy and revenue statistics for the admin dashboard.
type StatsDTO struct {
	TotalRooms      int            `json:"total_rooms"`
	OccupiedRooms   int            `json:"occupied_rooms"`
	AvailableByType map[string]int `json:"available_by_type"`
	TotalBookings   int            `json:"total_bookings"`
	ActiveBookings  int            `json:"active_bookings"`
	BilledRevenue   float64        `json:"billed_revenue"`
}

// BookingService is the booking engine. It owns the only write path through
// rooms, guests, and bookings: the availability check and the state changes
// that follow it run under one mutex, so a room can never be double-booked
// by concurrent callers.
type BookingService struct {
	mu        sync.Mutex
	bookings  bookingDomain.Repository
	rooms     roomDomain.Repository
	guests    guestDomain.Repository
	billing   *BillingService
	publisher events.Publisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.Repository,
	rooms roomDomain.Repository,
	guests guestDomain.Repository,
	billingSvc *BillingService,
	publisher events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		rooms:     rooms,
		guests:    guests,
		billing:   billingSvc,
		publisher: publisher,
		logger:    logger,
	}
}

// IsRoomAvailable reports whether a room is free over the given stay. It
// reads the booking history and mutates nothing, so repeated calls with the
// same arguments agree.
func (s *BookingService) IsRoomAvailable(ctx context.Context, roomNumber string, stay bookingDomain.StayInterval) (bool, error) {
	history, err := s.bookings.ListByRoom(ctx, roomNumber)
	if err != nil {
		return false, err
	}
	return s.firstConflict(history, stay) == nil, nil
}

// firstConflict returns the booking blocking the requested stay, or nil.
// The stored stay interval of each existing booking is the canonical
// occupied range, including any late-checkout extension. Bookings sharing
// the requested check-in date are additionally held to the stricter
// same-day time rule.
func (s *BookingService) firstConflict(history []*bookingDomain.Booking, stay bookingDomain.StayInterval) *bookingDomain.Booking {
	for _, existing := range history {
		if existing.Stay().Overlaps(stay) {
			return existing
		}
		if existing.Stay().SameDayConflict(stay) {
			return existing
		}
	}
	return nil
}

// BookRoom accepts a booking: it parses the stay, picks the room, verifies
// no overlap against the history, and then, still inside the critical
// section, stores the booking, marks the room occupied, and records the
// guest's check-in in the stay ledger. On any failure nothing is mutated.
func (s *BookingService) BookRoom(ctx context.Context, req BookRoomRequest) (*BookingDTO, error) {
	stay, err := bookingDomain.ParseStay(req.CheckInDate, req.CheckInTime, req.CheckOutDate, req.CheckOutTime)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber == "" && req.RoomType == "" {
		return nil, domain.NewValidationError("provide room_number or room_type")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rm, err := s.resolveRoom(ctx, req)
	if err != nil {
		return nil, err
	}

	history, err := s.bookings.ListByRoom(ctx, rm.Number())
	if err != nil {
		return nil, err
	}
	if blocking := s.firstConflict(history, stay); blocking != nil {
		return nil, domain.NewConflictError(
			"room " + rm.Number() + " is already booked from " +
				blocking.Stay().FormatCheckIn() + " to " + blocking.Stay().FormatCheckOut())
	}

	g, err := s.findOrCreateGuest(ctx, req.Guest)
	if err != nil {
		return nil, err
	}

	b, err := bookingDomain.New(g.ID(), rm, stay, req.ExtraBeds)
	if err != nil {
		return nil, err
	}

	if err := rm.CheckIn(); err != nil {
		return nil, err
	}
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	if err := s.rooms.Update(ctx, rm); err != nil {
		return nil, err
	}

	g.RecordCheckIn()
	if err := s.guests.Update(ctx, g); err != nil {
		return nil, err
	}

	s.logger.Info("booking accepted",
		zap.String("booking_id", b.ID().String()),
		zap.String("guest", g.Name()),
		zap.String("room", rm.Number()),
		zap.Int("nights", b.Nights()),
		zap.Float64("base_cost", b.BaseCost()),
	)

	s.publishCreated(ctx, b, g)

	dto := s.toBookingDTO(b, g.Name())
	return &dto, nil
}

// CheckOut completes a booking at the actual checkout moment: it prices any
// late stay, consults the ledger for the loyalty discount, settles the
// booking through the three billing stages, frees the room, and returns the
// bill.
func (s *BookingService) CheckOut(ctx context.Context, bookingID uuid.UUID, req CheckOutRequest) (*billing.Bill, error) {
	actual, err := bookingDomain.ParseDateTime(req.CheckOutDate, req.CheckOutTime)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	g, err := s.guests.FindByID(ctx, b.GuestID())
	if err != nil {
		return nil, err
	}

	surcharge := billing.LateSurcharge(b.NightlyRate(), b.Stay().CheckOut(), actual)
	discount := s.billing.DiscountFor(ctx, g)
	charges := billing.Compute(b.BaseCost(), surcharge, discount)

	if err := b.CheckOut(actual, charges.Surcharge, charges.DiscountPercent, charges.Total); err != nil {
		return nil, err
	}
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	rm, err := s.rooms.FindByNumber(ctx, b.RoomNumber())
	if err != nil {
		return nil, err
	}
	if err := rm.CheckOut(); err != nil {
		return nil, err
	}
	if err := s.rooms.Update(ctx, rm); err != nil {
		return nil, err
	}

	s.logger.Info("booking checked out",
		zap.String("booking_id", b.ID().String()),
		zap.String("room", rm.Number()),
		zap.Float64("surcharge", charges.Surcharge),
		zap.Float64("discount_percent", charges.DiscountPercent),
		zap.Float64("total", charges.Total),
	)

	s.publishCheckedOut(ctx, b)

	return s.billing.GenerateBill(ctx, b)
}

// GetBooking retrieves one booking.
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := s.guestName(ctx, b.GuestID())
	dto := s.toBookingDTO(b, name)
	return &dto, nil
}

// ListBookings returns the booking history, newest first.
func (s *BookingService) ListBookings(ctx context.Context) ([]BookingDTO, error) {
	list, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, len(list))
	for i, b := range list {
		dtos[i] = s.toBookingDTO(b, s.guestName(ctx, b.GuestID()))
	}
	return dtos, nil
}

// Stats aggregates occupancy and billed revenue for the admin dashboard.
func (s *BookingService) Stats(ctx context.Context) (*StatsDTO, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &StatsDTO{
		TotalRooms:      len(rooms),
		AvailableByType: make(map[string]int),
		TotalBookings:   len(bookings),
	}

	for _, rm := range rooms {
		if rm.Occupied() {
			stats.OccupiedRooms++
			continue
		}
		stats.AvailableByType[string(rm.RoomType())]++
	}

	for _, b := range bookings {
		switch b.Status() {
		case bookingDomain.StatusCheckedIn:
			stats.ActiveBookings++
		case bookingDomain.StatusCheckedOut:
			stats.BilledRevenue += b.TotalCost()
		}
	}
	return stats, nil
}

// resolveRoom picks the room to book: a concrete number when given,
// otherwise the first free room of the requested type.
func (s *BookingService) resolveRoom(ctx context.Context, req BookRoomRequest) (*roomDomain.Room, error) {
	if req.RoomNumber != "" {
		rm, err := s.rooms.FindByNumber(ctx, req.RoomNumber)
		if err != nil {
			return nil, err
		}
		if rm.Occupied() {
			return nil, domain.NewConflictError("room " + rm.Number() + " is currently occupied")
		}
		return rm, nil
	}
	return s.rooms.FindFree(ctx, roomDomain.Type(req.RoomType))
}

// findOrCreateGuest reuses the ledger entry for a known name; details
// supplied with the new booking refresh the stored contact info.
func (s *BookingService) findOrCreateGuest(ctx context.Context, input GuestInput) (*guestDomain.Guest, error) {
	g, err := s.guests.FindByName(ctx, input.Name)
	if err == nil {
		g.UpdateContact(input.ContactNumber, input.Address)
		return g, nil
	}
	if !domain.IsKind(err, domain.ErrNotFound) {
		return nil, err
	}

	g, err = guestDomain.New(input.Name, input.ContactNumber, input.Address)
	if err != nil {
		return nil, err
	}
	if err := s.guests.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *BookingService) guestName(ctx context.Context, guestID uuid.UUID) string {
	g, err := s.guests.FindByID(ctx, guestID)
	if err != nil {
		return ""
	}
	return g.Name()
}

// publishCreated emits a booking-created event. Publishing is best effort;
// the booking stands whether or not anyone downstream hears about it.
func (s *BookingService) publishCreated(ctx context.Context, b *bookingDomain.Booking, g *guestDomain.Guest) {
	event := events.BookingCreatedEvent{
		BookingID:  b.ID(),
		GuestID:    g.ID(),
		GuestName:  g.Name(),
		RoomNumber: b.RoomNumber(),
		RoomType:   string(b.RoomType()),
		CheckIn:    b.Stay().CheckIn(),
		CheckOut:   b.Stay().CheckOut(),
		Nights:     b.Nights(),
		ExtraBeds:  b.ExtraBeds(),
		BaseCost:   b.BaseCost(),
		OccurredAt: time.Now().UTC(),
	}

	ce, err := events.NewCloudEvent("service-booking", events.BookingCreated, event)
	if err != nil {
		s.logger.Error("failed to build booking created event", zap.Error(err))
		return
	}
	if err := s.publisher.Publish(ctx, events.TopicBookingEvents, ce); err != nil {
		s.logger.Error("failed to publish booking created event", zap.Error(err))
	}
}

func (s *BookingService) publishCheckedOut(ctx context.Context, b *bookingDomain.Booking) {
	event := events.BookingCheckedOutEvent{
		BookingID:       b.ID(),
		GuestID:         b.GuestID(),
		RoomNumber:      b.RoomNumber(),
		LateSurcharge:   b.Surcharge(),
		DiscountPercent: b.Discount(),
		TotalCost:       b.TotalCost(),
		OccurredAt:      time.Now().UTC(),
	}

	ce, err := events.NewCloudEvent("service-booking", events.BookingCheckedOut, event)
	if err != nil {
		s.logger.Error("failed to build checkout event", zap.Error(err))
		return
	}
	if err := s.publisher.Publish(ctx, events.TopicBookingEvents, ce); err != nil {
		s.logger.Error("failed to publish checkout event", zap.Error(err))
	}
}

func (s *BookingService) toBookingDTO(b *bookingDomain.Booking, guestName string) BookingDTO {
	return BookingDTO{
		ID:              b.ID(),
		GuestID:         b.GuestID(),
		GuestName:       guestName,
		RoomNumber:      b.RoomNumber(),
		RoomType:        string(b.RoomType()),
		RoomTypeName:    b.RoomType().DisplayName(),
		CheckIn:         b.Stay().FormatCheckIn(),
		CheckOut:        b.Stay().FormatCheckOut(),
		Nights:          b.Nights(),
		ExtraBeds:       b.ExtraBeds(),
		BaseCost:        b.BaseCost(),
		LateSurcharge:   b.Surcharge(),
		DiscountPercent: b.Discount(),
		TotalCost:       b.TotalCost(),
		Status:          string(b.Status()),
		CreatedAt:       b.CreatedAt(),
	}
}
