package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/config"
	eventsController "github.com/Renzo49/Prudente-Pharmacy-04/controllers/events"
	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

// Deps bundles everything the route groups need.
type Deps struct {
	Cfg       *config.Config
	KV        *store.KV
	Inventory *store.InventoryStore
	Orders    *store.OrderStore
	Messages  *store.MessageStore
	Carts     *store.CartStore
	Hub       *eventsController.Hub
}

// SetupRoutes is the single entry-point that wires up the Shop, Order,
// Contact, and Admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public storefront routes
	SetupShopRoutes(r, d)

	// Orders, pickup QR, and the websocket event feed
	SetupOrderRoutes(r, d)

	// Contact form
	SetupContactRoutes(r, d)

	// Admin routes (JWT-protected)
	SetupAdminRoutes(r, d)
}
