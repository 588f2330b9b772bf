package handlers

import (
	"net/http"
	"time"

	"luxego/config"
	"luxego/utils"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /api/health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"message":     "API is running",
		"environment": config.GetEnv(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"services":    utils.GetHealthStatus(),
	})
}
