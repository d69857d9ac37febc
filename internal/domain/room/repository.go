package room

import "context"

// Repository defines the persistence contract for the room catalog.
type Repository interface {
	// FindByNumber retrieves a room by its number.
	FindByNumber(ctx context.Context, number string) (*Room, error)

	// FindFree retrieves the first unoccupied room of the given type.
	FindFree(ctx context.Context, roomType Type) (*Room, error)

	// CountAvailable returns the number of unoccupied rooms of the given
	// type. Unknown types count zero.
	CountAvailable(ctx context.Context, roomType Type) (int, error)

	// List retrieves all rooms ordered by room number.
	List(ctx context.Context) ([]*Room, error)

	// Save persists a new room. Duplicate room numbers are a conflict.
	Save(ctx context.Context, r *Room) error

	// Update persists occupancy changes to an existing room.
	Update(ctx context.Context, r *Room) error
}
