package qrcontroller

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

// PickupQRHandler returns the QR image URL a customer shows at pickup.
// The image comes from a third-party generator reached purely by URL
// templating; nothing is stored and nothing structured comes back.
// Query param: size (pixels, default 200).
func PickupQRHandler(apiBaseURL string, orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		if _, err := orders.Get(orderID); err != nil {
			if errors.Is(err, store.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up order"})
			}
			return
		}

		size := 200
		if raw := c.Query("size"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				size = parsed
			}
		}

		qrURL := fmt.Sprintf("%s?size=%dx%d&data=%s",
			apiBaseURL, size, size, url.QueryEscape("PICKUP-"+orderID))

		c.JSON(http.StatusOK, gin.H{
			"order_id": orderID,
			"qr_url":   qrURL,
		})
	}
}
