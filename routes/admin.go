package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/Renzo49/Prudente-Pharmacy-04/controllers/admin"
	messageControllers "github.com/Renzo49/Prudente-Pharmacy-04/controllers/message"
	orderControllers "github.com/Renzo49/Prudente-Pharmacy-04/controllers/order"
	productcontroller "github.com/Renzo49/Prudente-Pharmacy-04/controllers/product"
	"github.com/Renzo49/Prudente-Pharmacy-04/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Everything except
// login sits behind the admin token middleware.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	r.POST("/admin/login", adminController.Login(d.Cfg, d.KV))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminToken(d.Cfg.JWTSecret))
	{
		adminGroup.POST("/logout", adminController.Logout(d.KV))

		// ─────────── Order Management ───────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(d.Orders))
		adminGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.Orders))

		// ─────────── Inventory Management ───────────
		inventory := adminGroup.Group("/inventory")
		{
			inventory.GET("", productcontroller.GetProducts(d.Inventory))
			inventory.POST("", productcontroller.CreateProduct(d.Inventory))
			inventory.PUT("/:id/stock", productcontroller.UpdateStock(d.Inventory))
			inventory.GET("/export-excel", productcontroller.ExportProductsToExcel(d.Inventory))
		}

		// ─────────── Customer Messages ───────────
		messages := adminGroup.Group("/messages")
		{
			messages.GET("", messageControllers.GetMessagesHandler(d.Messages))
			messages.PUT("/:id/read", messageControllers.MarkReadHandler(d.Messages))
			messages.POST("/:id/reply", messageControllers.ReplyHandler(d.Messages))
		}

		// ─────────── Analytics & Preferences ───────────
		adminGroup.GET("/analytics", adminController.Analytics(d.Inventory, d.Orders, d.Messages))
		adminGroup.GET("/preferences/dark-mode", adminController.GetDarkMode(d.KV))
		adminGroup.PUT("/preferences/dark-mode", adminController.SetDarkMode(d.KV))
	}
}
