package application

import (
	"context"

	"go.uber.org/zap"

	roomDomain "github.com/ninepines/service-booking/internal/domain/room"
)

// AddRoomRequest is the DTO for registering a room in the catalog.
type AddRoomRequest struct {
	Number      string `json:"number" binding:"required"`
	Type        string `json:"type" binding:"required"`
	NightlyRate int64  `json:"nightly_rate" binding:"omitempty,gt=0"`
}

// RoomDTO is the API response representation of a room.
type RoomDTO struct {
	Number       string `json:"number"`
	Type         string `json:"type"`
	TypeName     string `json:"type_name"`
	NightlyRate  int64  `json:"nightly_rate"`
	ExtraBedRate int64  `json:"extra_bed_rate"`
	Occupied     bool   `json:"occupied"`
}

// AvailabilityDTO reports how many rooms of a type are free right now.
type AvailabilityDTO struct {
	Type      string `json:"type"`
	TypeName  string `json:"type_name"`
	Available int    `json:"available"`
	FirstFree string `json:"first_free_room,omitempty"`
}

// RoomService handles room-catalog use cases.
type RoomService struct {
	repo   roomDomain.Repository
	logger *zap.Logger
}

// NewRoomService creates a new RoomService.
func NewRoomService(repo roomDomain.Repository, logger *zap.Logger) *RoomService {
	return &RoomService{repo: repo, logger: logger}
}

// AddRoom registers a room. A zero rate falls back to the tier default.
func (s *RoomService) AddRoom(ctx context.Context, req AddRoomRequest) (*RoomDTO, error) {
	rate := req.NightlyRate
	if rate == 0 {
		rate = roomDomain.DefaultRate(roomDomain.Type(req.Type))
	}

	rm, err := roomDomain.New(req.Number, roomDomain.Type(req.Type), rate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, rm); err != nil {
		return nil, err
	}

	s.logger.Info("room added",
		zap.String("number", rm.Number()),
		zap.String("type", string(rm.RoomType())),
		zap.Int64("nightly_rate", rm.NightlyRate()),
	)

	dto := toRoomDTO(rm)
	return &dto, nil
}

// ListRooms returns the whole catalog.
func (s *RoomService) ListRooms(ctx context.Context) ([]RoomDTO, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]RoomDTO, len(rooms))
	for i, rm := range rooms {
		dtos[i] = toRoomDTO(rm)
	}
	return dtos, nil
}

// Availability reports the free-room count for a type, and the first free
// room number when one exists. Unknown types report zero, not an error.
func (s *RoomService) Availability(ctx context.Context, typeCode string) (*AvailabilityDTO, error) {
	roomType := roomDomain.Type(typeCode)

	count, err := s.repo.CountAvailable(ctx, roomType)
	if err != nil {
		return nil, err
	}

	dto := &AvailabilityDTO{
		Type:      typeCode,
		TypeName:  roomType.DisplayName(),
		Available: count,
	}

	if count > 0 {
		if free, err := s.repo.FindFree(ctx, roomType); err == nil {
			dto.FirstFree = free.Number()
		}
	}
	return dto, nil
}

func toRoomDTO(rm *roomDomain.Room) RoomDTO {
	return RoomDTO{
		Number:       rm.Number(),
		Type:         string(rm.RoomType()),
		TypeName:     rm.RoomType().DisplayName(),
		NightlyRate:  rm.NightlyRate(),
		ExtraBedRate: rm.ExtraBedRate(),
		Occupied:     rm.Occupied(),
	}
}
