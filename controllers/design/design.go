package designcontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ImportHandler fabricates a placeholder image URL for the design-import
// feature. A real integration would call the design tool's API; this
// endpoint only ever returns a URL string.
// Query params: source (figma/sketch/...), url, node (figma only).
func ImportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		source := c.Query("source")
		designURL := c.Query("url")

		if source == "" || designURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing source or URL"})
			return
		}

		var imageURL string
		switch source {
		case "figma":
			nodeID := c.DefaultQuery("node", "main")
			imageURL = fmt.Sprintf("/placeholder.svg?height=300&width=300&text=Figma+Import:+%s", nodeID)
		case "sketch":
			imageURL = "/placeholder.svg?height=300&width=300&text=Sketch+Import"
		default:
			imageURL = "/placeholder.svg?height=300&width=300&text=Design+Import"
		}

		c.JSON(http.StatusOK, gin.H{"url": imageURL})
	}
}
