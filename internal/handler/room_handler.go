package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ninepines/service-booking/internal/application"
)

// RoomHandler handles HTTP requests for the room catalog.
type RoomHandler struct {
	service *application.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(service *application.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// RegisterRoutes registers room routes on the given router group.
func (h *RoomHandler) RegisterRoutes(r *gin.RouterGroup) {
	rooms := r.Group("/rooms")
	{
		rooms.GET("", h.ListRooms)
		rooms.POST("", h.AddRoom)
		rooms.GET("/availability", h.Availability)
	}
}

// ListRooms handles GET /api/v1/rooms
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, rooms)
}

// AddRoom handles POST /api/v1/rooms
func (h *RoomHandler) AddRoom(c *gin.Context) {
	var req application.AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	dto, err := h.service.AddRoom(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, dto)
}

// Availability handles GET /api/v1/rooms/availability?type=S
func (h *RoomHandler) Availability(c *gin.Context) {
	typeCode := c.Query("type")
	if typeCode == "" {
		respondBadRequest(c, "query parameter 'type' is required")
		return
	}

	dto, err := h.service.Availability(c.Request.Context(), typeCode)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, dto)
}
