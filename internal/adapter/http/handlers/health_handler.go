package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "pix-backend"

// HealthCheck godoc
// @Summary      Service liveness
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /pix/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}
