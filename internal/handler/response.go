package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ninepines/service-booking/internal/domain"
)

// respond helpers keep every endpoint's JSON shape identical.

func respondSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// respondError maps domain error kinds to HTTP statuses. Anything
// unrecognized is a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsKind(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case domain.IsKind(err, domain.ErrConflict), domain.IsKind(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	case domain.IsKind(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
	}
}
