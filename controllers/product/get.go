package productcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

// GetProducts returns the live inventory, optionally filtered.
// Query params: category (exact match), search (name/description).
func GetProducts(inv *store.InventoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		search := strings.ToLower(c.Query("search"))

		products := inv.List()
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if category != "" && p.Category != category {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Description), search) {
				continue
			}
			filtered = append(filtered, p)
		}

		c.JSON(http.StatusOK, filtered)
	}
}

// GetProductByID returns a single product's current snapshot.
// URL param: /shop/products/:id
func GetProductByID(inv *store.InventoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, err := inv.GetProduct(id)
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetCategories returns the fixed category list.
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Categories)
	}
}
