package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/ninepines/service-booking/internal/domain"
	roomDomain "github.com/ninepines/service-booking/internal/domain/room"
)

// RoomRepositoryImpl is the in-memory implementation of room.Repository.
// The catalog lives for one process run; there is no persistence surface.
type RoomRepositoryImpl struct {
	mu    sync.RWMutex
	rooms map[string]*roomDomain.Room
}

// NewRoomRepository creates an empty in-memory room catalog.
func NewRoomRepository() *RoomRepositoryImpl {
	return &RoomRepositoryImpl{
		rooms: make(map[string]*roomDomain.Room),
	}
}

// FindByNumber retrieves a room by its number.
func (r *RoomRepositoryImpl) FindByNumber(_ context.Context, number string) (*roomDomain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rm, ok := r.rooms[number]
	if !ok {
		return nil, domain.NewNotFoundError("Room", number)
	}
	return rm, nil
}

// FindFree retrieves the first unoccupied room of the given type, scanning
// in room-number order.
func (r *RoomRepositoryImpl) FindFree(_ context.Context, roomType roomDomain.Type) (*roomDomain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rm := range r.sortedLocked() {
		if rm.RoomType() == roomType && !rm.Occupied() {
			return rm, nil
		}
	}
	return nil, domain.NewNotFoundError("free room of type", string(roomType))
}

// CountAvailable counts unoccupied rooms of the given type. Unknown types
// count zero.
func (r *RoomRepositoryImpl) CountAvailable(_ context.Context, roomType roomDomain.Type) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, rm := range r.rooms {
		if rm.RoomType() == roomType && !rm.Occupied() {
			count++
		}
	}
	return count, nil
}

// List retrieves all rooms ordered by room number.
func (r *RoomRepositoryImpl) List(_ context.Context) ([]*roomDomain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(), nil
}

// Save persists a new room. A duplicate room number is a conflict.
func (r *RoomRepositoryImpl) Save(_ context.Context, rm *roomDomain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[rm.Number()]; exists {
		return domain.NewConflictError("room " + rm.Number() + " already exists")
	}
	r.rooms[rm.Number()] = rm
	return nil
}

// Update persists occupancy changes to an existing room.
func (r *RoomRepositoryImpl) Update(_ context.Context, rm *roomDomain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[rm.Number()]; !exists {
		return domain.NewNotFoundError("Room", rm.Number())
	}
	r.rooms[rm.Number()] = rm
	return nil
}

func (r *RoomRepositoryImpl) sortedLocked() []*roomDomain.Room {
	rooms := make([]*roomDomain.Room, 0, len(r.rooms))
	for _, rm := range r.rooms {
		rooms = append(rooms, rm)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Number() < rooms[j].Number()
	})
	return rooms
}
