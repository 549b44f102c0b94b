package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars-api/db"
)

type HealthHandler struct {
	db db.Database
}

func NewHealthHandler(database db.Database) *HealthHandler {
	return &HealthHandler{db: database}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"message": "database ping failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "OK",
		"database": "connected",
	})
}
