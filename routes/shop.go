package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Renzo49/Prudente-Pharmacy-04/controllers/cart"
	designcontroller "github.com/Renzo49/Prudente-Pharmacy-04/controllers/design"
	productcontroller "github.com/Renzo49/Prudente-Pharmacy-04/controllers/product"
)

// SetupShopRoutes registers the public "/shop/*" endpoints plus the
// design-import placeholder.
func SetupShopRoutes(r *gin.Engine, d Deps) {
	shop := r.Group("/shop")
	{
		// ──────────────── Browse Products ────────────────
		shop.GET("/products", productcontroller.GetProducts(d.Inventory))
		shop.GET("/products/:id", productcontroller.GetProductByID(d.Inventory))
		shop.GET("/categories", productcontroller.GetCategories())

		// ──────────────── Shopping Cart ────────────────
		cart := shop.Group("/cart")
		{
			cart.GET("", cartControllers.GetCart(d.Carts))
			cart.POST("", cartControllers.UpdateCartItem(d.Carts, d.Inventory))
			cart.DELETE("/:product_id", cartControllers.DeleteCartItem(d.Carts))
			cart.DELETE("", cartControllers.ClearCart(d.Carts))
		}
	}

	r.GET("/design-import", designcontroller.ImportHandler())
}
