package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ninepines/service-booking/internal/domain/billing"
	bookingDomain "github.com/ninepines/service-booking/internal/domain/booking"
	guestDomain "github.com/ninepines/service-booking/internal/domain/guest"
)

// HotelInfo is the letterhead stamped onto every bill.
type HotelInfo struct {
	Name    string
	Address string
}

// BillingService decides loyalty discounts and assembles bills. The
// discount percentage is plain configuration handed in at construction;
// nothing mutates it at runtime.
type BillingService struct {
	guests          guestDomain.Repository
	hotel           HotelInfo
	discountPercent float64
	logger          *zap.Logger
}

// NewBillingService creates a new BillingService.
func NewBillingService(
	guests guestDomain.Repository,
	hotel HotelInfo,
	discountPercent float64,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		guests:          guests,
		hotel:           hotel,
		discountPercent: discountPercent,
		logger:          logger,
	}
}

// DiscountFor consults the stay ledger: a returning guest (strictly more
// than one recorded check-in) gets the configured percentage, everyone else
// gets zero.
func (s *BillingService) DiscountFor(ctx context.Context, g *guestDomain.Guest) float64 {
	if g.IsReturning() {
		return s.discountPercent
	}
	return 0
}

// GenerateBill assembles the bill for a checked-out booking, stamped with
// the current wall-clock time. The booking already carries the settled
// three-stage amounts.
func (s *BillingService) GenerateBill(ctx context.Context, b *bookingDomain.Booking) (*billing.Bill, error) {
	g, err := s.guests.FindByID(ctx, b.GuestID())
	if err != nil {
		return nil, err
	}

	bill := &billing.Bill{
		HotelName:       s.hotel.Name,
		HotelAddress:    s.hotel.Address,
		IssuedAt:        time.Now().UTC(),
		GuestName:       g.Name(),
		RoomNumber:      b.RoomNumber(),
		RoomTypeName:    b.RoomType().DisplayName(),
		CheckIn:         b.Stay().FormatCheckIn(),
		CheckOut:        b.Stay().FormatCheckOut(),
		Nights:          b.Nights(),
		ExtraBeds:       b.ExtraBeds(),
		BaseCost:        b.BaseCost(),
		LateSurcharge:   b.Surcharge(),
		Subtotal:        b.BaseCost() + b.Surcharge(),
		DiscountPercent: b.Discount(),
		TotalCost:       b.TotalCost(),
	}

	s.logger.Info("bill generated",
		zap.String("booking_id", b.ID().String()),
		zap.String("guest", bill.GuestName),
		zap.Float64("total", bill.TotalCost),
		zap.Float64("discount_percent", bill.DiscountPercent),
	)
	return bill, nil
}
