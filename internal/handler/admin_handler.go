package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ninepines/service-booking/internal/application"
)

// AdminHandler handles admin and health endpoints.
type AdminHandler struct {
	bookingService *application.BookingService
	serviceName    string
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bookingService *application.BookingService, serviceName string) *AdminHandler {
	return &AdminHandler{
		bookingService: bookingService,
		serviceName:    serviceName,
	}
}

// RegisterRoutes registers admin routes on the given router group.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.GET("/stats", h.Stats)
	}
}

// RegisterHealth registers the health check at the engine root.
func (h *AdminHandler) RegisterHealth(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.serviceName})
	})
}

// Stats handles GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.bookingService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, stats)
}
