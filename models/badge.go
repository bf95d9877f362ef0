package models

type Badge string

const (
	BadgeNone       Badge = ""
	BadgeNew        Badge = "new"
	BadgeBestseller Badge = "bestseller"
	BadgeLowStock   Badge = "lowstock"
)

// LowStockThreshold is the stock level at or below which a product counts
// as low stock (exclusive of zero, which is out of stock).
const LowStockThreshold = 5

// DeriveBadge computes the badge after a stock change. Inside (0,5] the
// badge is always lowstock; outside that range a previous lowstock is
// cleared and any merchandising badge (new, bestseller) is kept as-is.
func DeriveBadge(old Badge, newStock int) Badge {
	if newStock > 0 && newStock <= LowStockThreshold {
		return BadgeLowStock
	}
	if old == BadgeLowStock {
		return BadgeNone
	}
	return old
}
