package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	InStock     int     `json:"inStock" binding:"gte=0"`
	Badge       string  `json:"badge"`
	IsPopular   bool    `json:"isPopular"`
}

// CreateProduct inserts a new product under a store-assigned id.
func CreateProduct(inv *store.InventoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		validCategory := false
		for _, cat := range models.Categories {
			if cat == req.Category {
				validCategory = true
				break
			}
		}
		if !validCategory {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}

		switch models.Badge(req.Badge) {
		case models.BadgeNone, models.BadgeNew, models.BadgeBestseller, models.BadgeLowStock:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown badge"})
			return
		}

		product, err := inv.AddProduct(models.Product{
			Name:        req.Name,
			Category:    req.Category,
			Price:       req.Price,
			Description: req.Description,
			Image:       req.Image,
			InStock:     req.InStock,
			Badge:       models.Badge(req.Badge),
			IsPopular:   req.IsPopular,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
