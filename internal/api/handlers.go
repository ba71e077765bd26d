package api

import (
	"net/http"

	"mindtrack/internal/config"

	"github.com/gin-gonic/gin"
)

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// configHandler exposes the non-secret parts of the runtime config
func configHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ai_enabled": cfg.AI.Endpoint != "",
			"ai_model":   cfg.AI.Model,
		})
	}
}
