package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/Renzo49/Prudente-Pharmacy-04/controllers/order"
	qrcontroller "github.com/Renzo49/Prudente-Pharmacy-04/controllers/qr"
)

func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orders := r.Group("/orders")
	{
		// Submit the device's cart as a pickup order
		orders.POST("/checkout", orderControllers.CheckoutHandler(d.Orders, d.Carts))

		// Pickup status lookup
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(d.Orders))
	}

	// QR code shown at pickup
	r.GET("/qr/pickup/:orderID", qrcontroller.PickupQRHandler(d.Cfg.QRAPIBaseURL, d.Orders))

	// websocket feed of store events for other browsing contexts
	r.GET("/events/ws", d.Hub.Handler)
}
