package guest

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for guests and their stay
// ledger.
//
// Lookup by name exists for the repeat-visit rule: the front desk keys
// loyalty on the guest's name, so two guests sharing a name share a ledger
// entry. The uuid is the real identity; name collisions are a known
// ambiguity of the domain, not of this interface.
type Repository interface {
	// FindByID retrieves a guest by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Guest, error)

	// FindByName retrieves a guest by exact name.
	FindByName(ctx context.Context, name string) (*Guest, error)

	// List retrieves all guests ordered by name.
	List(ctx context.Context) ([]*Guest, error)

	// Save persists a new guest.
	Save(ctx context.Context, g *Guest) error

	// Update persists ledger and contact changes to an existing guest.
	Update(ctx context.Context, g *Guest) error
}
