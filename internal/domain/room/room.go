package room

import (
	"time"

	"github.com/ninepines/service-booking/internal/domain"
)

// Type is the single-character rate-tier code a room is sold under.
type Type string

const (
	TypeStandard Type = "S"
	TypeDeluxe   Type = "D"
	TypePremium  Type = "P"
)

// extraBedPercent is the fixed share of the nightly rate charged per extra bed.
const extraBedPercent = 20

// tierRates maps each tier to its default nightly rate in currency units.
var tierRates = map[Type]int64{
	TypeStandard: 10000,
	TypeDeluxe:   17500,
	TypePremium:  25000,
}

// IsValid reports whether the type is one of the sold tiers.
func (t Type) IsValid() bool {
	_, ok := tierRates[t]
	return ok
}

// DisplayName returns the guest-facing tier name.
func (t Type) DisplayName() string {
	switch t {
	case TypeStandard:
		return "Standard Room"
	case TypeDeluxe:
		return "Deluxe Room"
	case TypePremium:
		return "Premium Room"
	default:
		return "Unknown Room Type"
	}
}

// DefaultRate returns the catalog nightly rate for a tier, 0 for unknown tiers.
func DefaultRate(t Type) int64 {
	return tierRates[t]
}

// Room is the aggregate for a single physical room. The room number is the
// identity; occupancy tracks whether a guest is checked in right now.
type Room struct {
	number       string
	roomType     Type
	nightlyRate  int64
	extraBedRate int64
	occupied     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// New creates a room. The extra-bed rate is derived here and nowhere else so
// it is always exactly 20% of the nightly rate.
func New(number string, roomType Type, nightlyRate int64) (*Room, error) {
	if number == "" {
		return nil, domain.NewValidationError("room number is required")
	}
	if !roomType.IsValid() {
		return nil, domain.NewValidationError("unknown room type: " + string(roomType))
	}
	if nightlyRate <= 0 {
		return nil, domain.NewValidationError("nightly rate must be positive")
	}

	now := time.Now().UTC()
	return &Room{
		number:       number,
		roomType:     roomType,
		nightlyRate:  nightlyRate,
		extraBedRate: nightlyRate * extraBedPercent / 100,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (r *Room) Number() string { return r.number }
func (r *Room) RoomType() Type { return r.roomType }
func (r *Room) NightlyRate() int64 { return r.nightlyRate }
func (r *Room) ExtraBedRate() int64 { return r.extraBedRate }
func (r *Room) Occupied() bool { return r.occupied }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

// CheckIn marks the room occupied.
func (r *Room) CheckIn() error {
	if r.occupied {
		return domain.NewInvalidStateError("occupied", "occupied")
	}
	r.occupied = true
	r.updatedAt = time.Now().UTC()
	return nil
}

// CheckOut clears the occupancy flag.
func (r *Room) CheckOut() error {
	if !r.occupied {
		return domain.NewInvalidStateError("free", "free")
	}
	r.occupied = false
	r.updatedAt = time.Now().UTC()
	return nil
}
