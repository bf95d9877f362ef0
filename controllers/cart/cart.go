package cartControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// deviceID pulls the caller's device identity from the request header.
func deviceID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Device-ID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Device-ID header is required"})
		return "", false
	}
	return id, true
}

// GET /shop/cart
func GetCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		device, ok := deviceID(c)
		if !ok {
			return
		}
		cart := carts.Get(device)
		c.JSON(http.StatusOK, gin.H{
			"cart":       cart,
			"total":      cart.Total(),
			"item_count": cart.ItemCount(),
		})
	}
}

// POST /shop/cart
//
// Sets the quantity for one product. The stock check is optimistic: it
// reads the last-known stock and two devices can race past it. Stock is
// decremented when the quantity grows and is not restored on removal,
// matching the storefront's behavior.
func UpdateCartItem(carts *store.CartStore, inv *store.InventoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		device, ok := deviceID(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := inv.GetProduct(input.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		// How many units this change adds on top of what the cart holds.
		current := 0
		for _, item := range carts.Get(device).Items {
			if item.ID == input.ProductID {
				current = item.Quantity
				break
			}
		}
		added := input.Quantity - current

		if added > product.InStock {
			c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock", "inStock": product.InStock})
			return
		}

		// Reserve before persisting the cart: a cart entry must never
		// exist without its stock reservation.
		if added > 0 {
			if _, err := inv.DecreaseStock(product.ID, added); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reserve stock"})
				return
			}
		}

		cart, err := carts.SetItem(device, product, input.Quantity)
		if err != nil {
			if added > 0 {
				// Release the reservation the failed entry would have held.
				if _, relErr := inv.DecreaseStock(product.ID, -added); relErr != nil {
					log.Printf("⚠️ Failed to release stock for %s: %v", product.ID, relErr)
				}
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /shop/cart/:product_id
func DeleteCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		device, ok := deviceID(c)
		if !ok {
			return
		}

		cart, err := carts.Remove(device, c.Param("product_id"))
		if err != nil {
			if errors.Is(err, store.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			}
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /shop/cart
func ClearCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		device, ok := deviceID(c)
		if !ok {
			return
		}
		if err := carts.Clear(device); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
