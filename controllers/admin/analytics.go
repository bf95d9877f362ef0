package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

// Analytics aggregates the dashboard cards: product and order counts,
// revenue, stock alerts, and unread messages.
func Analytics(inv *store.InventoryStore, orders *store.OrderStore, messages *store.MessageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := inv.List()

		var lowStock, outOfStock []models.Product
		for _, p := range products {
			switch {
			case p.InStock == 0:
				outOfStock = append(outOfStock, p)
			case p.InStock <= models.LowStockThreshold:
				lowStock = append(lowStock, p)
			}
		}

		allOrders := orders.List()
		var revenue float64
		ordersByStatus := map[models.OrderStatus]int{}
		for _, order := range allOrders {
			revenue += order.Total
			ordersByStatus[order.Status]++
		}

		unread := 0
		for _, msg := range messages.List() {
			if msg.Status == models.MessageStatusUnread {
				unread++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"product_count":    len(products),
			"order_count":      len(allOrders),
			"total_revenue":    revenue,
			"orders_by_status": ordersByStatus,
			"low_stock":        lowStock,
			"out_of_stock":     outOfStock,
			"unread_messages":  unread,
		})
	}
}
