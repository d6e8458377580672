package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports liveness only; it never calls the rate provider.
func HealthCheck(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	}
}
