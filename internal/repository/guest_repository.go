package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/ninepines/service-booking/internal/domain"
	guestDomain "github.com/ninepines/service-booking/internal/domain/guest"
)

// GuestRepositoryImpl is the in-memory implementation of guest.Repository.
// It doubles as the injectable stay ledger: counts live on the guest
// aggregates it holds, not in process-wide state.
type GuestRepositoryImpl struct {
	mu      sync.RWMutex
	guests  map[uuid.UUID]*guestDomain.Guest
	byName  map[string]uuid.UUID
}

// NewGuestRepository creates an empty in-memory guest ledger.
func NewGuestRepository() *GuestRepositoryImpl {
	return &GuestRepositoryImpl{
		guests: make(map[uuid.UUID]*guestDomain.Guest),
		byName: make(map[string]uuid.UUID),
	}
}

// FindByID retrieves a guest by their unique ID.
func (r *GuestRepositoryImpl) FindByID(_ context.Context, id uuid.UUID) (*guestDomain.Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.guests[id]
	if !ok {
		return nil, domain.NewNotFoundError("Guest", id.String())
	}
	return g, nil
}

// FindByName retrieves a guest by exact name. Two guests sharing a name
// share one record here; see the Repository contract.
func (r *GuestRepositoryImpl) FindByName(_ context.Context, name string) (*guestDomain.Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return nil, domain.NewNotFoundError("Guest", name)
	}
	return r.guests[id], nil
}

// List retrieves all guests ordered by name.
func (r *GuestRepositoryImpl) List(_ context.Context) ([]*guestDomain.Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	guests := make([]*guestDomain.Guest, 0, len(r.guests))
	for _, g := range r.guests {
		guests = append(guests, g)
	}
	sort.Slice(guests, func(i, j int) bool {
		return guests[i].Name() < guests[j].Name()
	})
	return guests, nil
}

// Save persists a new guest.
func (r *GuestRepositoryImpl) Save(_ context.Context, g *guestDomain.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[g.Name()]; exists {
		return domain.NewConflictError("guest " + g.Name() + " already exists")
	}
	r.guests[g.ID()] = g
	r.byName[g.Name()] = g.ID()
	return nil
}

// Update persists ledger and contact changes to an existing guest.
func (r *GuestRepositoryImpl) Update(_ context.Context, g *guestDomain.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.guests[g.ID()]; !exists {
		return domain.NewNotFoundError("Guest", g.ID().String())
	}
	r.guests[g.ID()] = g
	return nil
}
