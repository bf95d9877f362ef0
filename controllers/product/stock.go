package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

type UpdateStockRequest struct {
	InStock *int `json:"inStock" binding:"required"`
}

// UpdateStock sets a product's stock level. Negative inputs clamp to
// zero; the lowstock badge follows the new level automatically.
func UpdateStock(inv *store.InventoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var req UpdateStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product, err := inv.UpdateStock(id, *req.InStock)
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			}
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
