package messageControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// ContactHandler records a customer message from the contact form.
// Validation is presence-only, matching the form it replaces.
func ContactHandler(messages *store.MessageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if strings.TrimSpace(req.Name) == "" ||
			strings.TrimSpace(req.Email) == "" ||
			strings.TrimSpace(req.Message) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, and message are required"})
			return
		}

		msg, err := messages.Append(req.Name, req.Email, req.Message)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

// GetMessagesHandler lists the inbox, newest first (admin view).
func GetMessagesHandler(messages *store.MessageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, messages.List())
	}
}

// MarkReadHandler moves a message from unread to read.
func MarkReadHandler(messages *store.MessageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg, err := messages.MarkRead(c.Param("id"))
		if err != nil {
			respondMessageError(c, err)
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}

// ReplyHandler attaches the admin reply and finalizes the message.
func ReplyHandler(messages *store.MessageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReplyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		msg, err := messages.Reply(c.Param("id"), req.Reply)
		if err != nil {
			respondMessageError(c, err)
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}

func respondMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
	case errors.Is(err, store.ErrMessageReplied):
		c.JSON(http.StatusConflict, gin.H{"error": "Message already replied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
	}
}
