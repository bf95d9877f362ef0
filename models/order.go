package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	// Pickup order flow: placed, packed for pickup, handed over.
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a request string to an OrderStatus.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusReady):
		return OrderStatusReady, nil
	case string(OrderStatusCompleted):
		return OrderStatusCompleted, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// rank orders the statuses for transition checks.
func (s OrderStatus) rank() int {
	switch s {
	case OrderStatusPending:
		return 0
	case OrderStatusReady:
		return 1
	case OrderStatusCompleted:
		return 2
	}
	return -1
}

// CanTransition reports whether moving from s to next is a forward move.
// Skipping ahead (pending straight to completed) is allowed, going
// backward is not. Status is informational only; no inventory check.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	return next.rank() > s.rank()
}

// Order is an immutable snapshot of a submitted cart. Only Status may
// change after creation.
type Order struct {
	ID        string      `json:"id"`
	Items     []CartItem  `json:"items"`
	Total     float64     `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
	Status    OrderStatus `json:"status"`
}
