package adminController

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/auth"
	"github.com/Renzo49/Prudente-Pharmacy-04/config"
	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the configured admin credentials and issues a session
// token. This is the storefront's demo login (default admin/admin) and
// is NOT a security boundary; do not ship it as one.
func Login(cfg *config.Config, kv *store.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(cfg.AdminUsername)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfg.AdminPassword)) == 1
		if !userOK || !passOK {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		token, err := auth.IssueAdminToken(req.Username, cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		if err := kv.SetString(store.KeyAdminAuth, "true"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist session flag"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// Logout clears the persisted admin flag. The token itself simply
// expires.
func Logout(kv *store.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := kv.Delete(store.KeyAdminAuth); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session flag"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
