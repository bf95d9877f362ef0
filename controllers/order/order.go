package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CheckoutHandler turns the device's cart into a pending pickup order.
// Stock was already reserved when the items entered the cart, so the
// only checks here are a non-empty cart and a device identity. The cart
// is cleared once the order is recorded.
func CheckoutHandler(orders *store.OrderStore, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		device := c.GetHeader("X-Device-ID")
		if device == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "X-Device-ID header is required"})
			return
		}

		cart := carts.Get(device)
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		order, err := orders.Append(cart.Items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		if err := carts.Clear(device); err != nil {
			// The order exists; report it even if the cart lingers.
			c.JSON(http.StatusOK, gin.H{"order": order, "warning": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

// GetAllOrdersHandler lists every order (admin view).
func GetAllOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.List())
	}
}

// GetOrderByIDHandler returns one order, for pickup status lookups.
func GetOrderByIDHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, err := orders.Get(id)
		if err != nil {
			if errors.Is(err, store.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler advances an order's status (admin-driven,
// forward only).
func UpdateOrderStatusHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orders.UpdateStatus(id, status)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, store.ErrBackwardStatus):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
