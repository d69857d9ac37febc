package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninepines/service-booking/internal/domain"
	bookingDomain "github.com/ninepines/service-booking/internal/domain/booking"
	guestDomain "github.com/ninepines/service-booking/internal/domain/guest"
	roomDomain "github.com/ninepines/service-booking/internal/domain/room"
)

func addRoom(t *testing.T, repo *RoomRepositoryImpl, number string, roomType roomDomain.Type) *roomDomain.Room {
	t.Helper()
	rm, err := roomDomain.New(number, roomType, roomDomain.DefaultRate(roomType))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), rm))
	return rm
}

func TestRoomRepository_SaveAndFind(t *testing.T) {
	repo := NewRoomRepository()
	ctx := context.Background()

	addRoom(t, repo, "101", roomDomain.TypeStandard)

	rm, err := repo.FindByNumber(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, "101", rm.Number())

	_, err = repo.FindByNumber(ctx, "999")
	assert.True(t, domain.IsKind(err, domain.ErrNotFound))
}

func TestRoomRepository_DuplicateNumber(t *testing.T) {
	repo := NewRoomRepository()
	addRoom(t, repo, "101", roomDomain.TypeStandard)

	dup, err := roomDomain.New("101", roomDomain.TypeDeluxe, 17500)
	require.NoError(t, err)
	err = repo.Save(context.Background(), dup)
	assert.True(t, domain.IsKind(err, domain.ErrConflict))
}

func TestRoomRepository_FindFreeScansInNumberOrder(t *testing.T) {
	repo := NewRoomRepository()
	ctx := context.Background()

	r102 := addRoom(t, repo, "102", roomDomain.TypeStandard)
	addRoom(t, repo, "101", roomDomain.TypeStandard)
	addRoom(t, repo, "201", roomDomain.TypeDeluxe)

	free, err := repo.FindFree(ctx, roomDomain.TypeStandard)
	require.NoError(t, err)
	assert.Equal(t, "101", free.Number())

	require.NoError(t, free.CheckIn())
	require.NoError(t, repo.Update(ctx, free))

	free, err = repo.FindFree(ctx, roomDomain.TypeStandard)
	require.NoError(t, err)
	assert.Equal(t, "102", free.Number())

	require.NoError(t, r102.CheckIn())
	require.NoError(t, repo.Update(ctx, r102))

	_, err = repo.FindFree(ctx, roomDomain.TypeStandard)
	assert.True(t, domain.IsKind(err, domain.ErrNotFound))
}

func TestRoomRepository_CountAvailable(t *testing.T) {
	repo := NewRoomRepository()
	ctx := context.Background()

	addRoom(t, repo, "101", roomDomain.TypeStandard)
	rm := addRoom(t, repo, "102", roomDomain.TypeStandard)
	addRoom(t, repo, "201", roomDomain.TypeDeluxe)

	count, err := repo.CountAvailable(ctx, roomDomain.TypeStandard)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, rm.CheckIn())
	require.NoError(t, repo.Update(ctx, rm))

	count, err = repo.CountAvailable(ctx, roomDomain.TypeStandard)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountAvailable(ctx, roomDomain.Type("X"))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestGuestRepository_NameLookup(t *testing.T) {
	repo := NewGuestRepository()
	ctx := context.Background()

	g, err := guestDomain.New("Batman", "081234", "Gotham")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, g))

	found, err := repo.FindByName(ctx, "Batman")
	require.NoError(t, err)
	assert.Equal(t, g.ID(), found.ID())

	_, err = repo.FindByName(ctx, "Joker")
	assert.True(t, domain.IsKind(err, domain.ErrNotFound))

	// One record per name.
	dup, err := guestDomain.New("Batman", "", "")
	require.NoError(t, err)
	err = repo.Save(ctx, dup)
	assert.True(t, domain.IsKind(err, domain.ErrConflict))
}

func TestGuestRepository_ListSortedByName(t *testing.T) {
	repo := NewGuestRepository()
	ctx := context.Background()

	for _, name := range []string{"Joker", "Batman", "Alfred"} {
		g, err := guestDomain.New(name, "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, g))
	}

	guests, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, guests, 3)
	assert.Equal(t, "Alfred", guests[0].Name())
	assert.Equal(t, "Batman", guests[1].Name())
	assert.Equal(t, "Joker", guests[2].Name())
}

func TestBookingRepository_ListByRoom(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	rm, err := roomDomain.New("101", roomDomain.TypeStandard, 10000)
	require.NoError(t, err)
	other, err := roomDomain.New("102", roomDomain.TypeStandard, 10000)
	require.NoError(t, err)

	stay, err := bookingDomain.ParseStay("16:04:2024", "12:00", "18:04:2024", "12:00")
	require.NoError(t, err)

	b1, err := bookingDomain.New(uuid.New(), rm, stay, 0)
	require.NoError(t, err)
	b2, err := bookingDomain.New(uuid.New(), other, stay, 0)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, b1))
	require.NoError(t, repo.Save(ctx, b2))

	history, err := repo.ListByRoom(ctx, "101")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, b1.ID(), history[0].ID())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
