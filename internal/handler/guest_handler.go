package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ninepines/service-booking/internal/application"
)

// GuestHandler handles HTTP requests for the guest ledger.
type GuestHandler struct {
	service *application.GuestService
}

// NewGuestHandler creates a new GuestHandler.
func NewGuestHandler(service *application.GuestService) *GuestHandler {
	return &GuestHandler{service: service}
}

// RegisterRoutes registers guest routes on the given router group.
func (h *GuestHandler) RegisterRoutes(r *gin.RouterGroup) {
	guests := r.Group("/guests")
	{
		guests.GET("", h.ListGuests)
		guests.GET("/:id", h.GetGuest)
	}
}

// ListGuests handles GET /api/v1/guests
func (h *GuestHandler) ListGuests(c *gin.Context) {
	guests, err := h.service.ListGuests(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, guests)
}

// GetGuest handles GET /api/v1/guests/:id
func (h *GuestHandler) GetGuest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid guest ID")
		return
	}

	dto, err := h.service.GetGuest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, dto)
}
