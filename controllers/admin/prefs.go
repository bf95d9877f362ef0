package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

type DarkModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// GetDarkMode returns the persisted dark-mode preference (off when
// unset).
func GetDarkMode(kv *store.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, _, err := kv.GetString(store.KeyDarkMode)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read preference"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"enabled": value == "true"})
	}
}

// SetDarkMode persists the dark-mode preference.
func SetDarkMode(kv *store.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DarkModeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		value := "false"
		if *req.Enabled {
			value = "true"
		}
		if err := kv.SetString(store.KeyDarkMode, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"enabled": *req.Enabled})
	}
}
