package models

import "time"

// CartItem is a product joined with a quantity. The product fields are a
// snapshot taken when the item entered the cart, not a live reference.
type CartItem struct {
	Product
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// Cart holds one device's cart, one entry per product id.
type Cart struct {
	DeviceID  string     `json:"device_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Total sums price times quantity across all items.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount sums the quantities across all items.
func (c Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
