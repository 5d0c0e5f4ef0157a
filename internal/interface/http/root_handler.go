package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Banner GET / reports the service name and version.
func Banner(appName, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": appName + " API",
			"version": version,
			"status":  "running",
		})
	}
}
