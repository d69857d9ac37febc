package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	guestDomain "github.com/ninepines/service-booking/internal/domain/guest"
)

// GuestDTO is the API response representation of a guest and their ledger
// entry.
type GuestDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Address       string    `json:"address,omitempty"`
	CheckInCount  int       `json:"check_in_count"`
	Returning     bool      `json:"returning"`
}

// GuestService handles guest-ledger read use cases.
type GuestService struct {
	repo   guestDomain.Repository
	logger *zap.Logger
}

// NewGuestService creates a new GuestService.
func NewGuestService(repo guestDomain.Repository, logger *zap.Logger) *GuestService {
	return &GuestService{repo: repo, logger: logger}
}

// ListGuests returns all guests with their visit counts.
func (s *GuestService) ListGuests(ctx context.Context) ([]GuestDTO, error) {
	guests, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]GuestDTO, len(guests))
	for i, g := range guests {
		dtos[i] = toGuestDTO(g)
	}
	return dtos, nil
}

// GetGuest retrieves one guest by ID.
func (s *GuestService) GetGuest(ctx context.Context, id uuid.UUID) (*GuestDTO, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := toGuestDTO(g)
	return &dto, nil
}

func toGuestDTO(g *guestDomain.Guest) GuestDTO {
	return GuestDTO{
		ID:            g.ID(),
		Name:          g.Name(),
		ContactNumber: g.ContactNumber(),
		Address:       g.Address(),
		CheckInCount:  g.CheckInCount(),
		Returning:     g.IsReturning(),
	}
}
