package guest

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ninepines/service-booking/internal/domain"
)

// Guest is the aggregate for one hotel guest. The check-in count is the
// loyalty ledger: it only ever grows, one increment per accepted booking,
// and a guest counts as returning from their second stay onward.
type Guest struct {
	id            uuid.UUID
	name          string
	contactNumber string
	address       string
	checkInCount  int
	createdAt     time.Time
	updatedAt     time.Time
}

// New creates a guest with a zero check-in count.
func New(name, contactNumber, address string) (*Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("guest name is required")
	}

	now := time.Now().UTC()
	return &Guest{
		id:            uuid.New(),
		name:          name,
		contactNumber: contactNumber,
		address:       address,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func (g *Guest) ID() uuid.UUID { return g.id }
func (g *Guest) Name() string { return g.name }
func (g *Guest) ContactNumber() string { return g.contactNumber }
func (g *Guest) Address() string { return g.address }
func (g *Guest) CheckInCount() int { return g.checkInCount }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time { return g.updatedAt }

// RecordCheckIn increments the stay ledger. Never decremented, even after
// checkout.
func (g *Guest) RecordCheckIn() {
	g.checkInCount++
	g.updatedAt = time.Now().UTC()
}

// IsReturning reports loyalty-discount eligibility: strictly more than one
// recorded check-in. A guest's very first stay never qualifies.
func (g *Guest) IsReturning() bool {
	return g.checkInCount > 1
}

// UpdateContact refreshes contact details supplied with a later booking.
func (g *Guest) UpdateContact(contactNumber, address string) {
	if contactNumber != "" {
		g.contactNumber = contactNumber
	}
	if address != "" {
		g.address = address
	}
	g.updatedAt = time.Now().UTC()
}
