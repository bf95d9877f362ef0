package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveBadge(t *testing.T) {
	tests := []struct {
		name     string
		old      Badge
		newStock int
		want     Badge
	}{
		{name: "no badge, healthy stock", old: BadgeNone, newStock: 50, want: BadgeNone},
		{name: "no badge, enters low range", old: BadgeNone, newStock: 5, want: BadgeLowStock},
		{name: "no badge, bottom of low range", old: BadgeNone, newStock: 1, want: BadgeLowStock},
		{name: "no badge, zero stock", old: BadgeNone, newStock: 0, want: BadgeNone},
		{name: "lowstock cleared above threshold", old: BadgeLowStock, newStock: 6, want: BadgeNone},
		{name: "lowstock cleared at zero", old: BadgeLowStock, newStock: 0, want: BadgeNone},
		{name: "lowstock kept inside range", old: BadgeLowStock, newStock: 3, want: BadgeLowStock},
		{name: "bestseller kept outside range", old: BadgeBestseller, newStock: 40, want: BadgeBestseller},
		{name: "bestseller overridden inside range", old: BadgeBestseller, newStock: 2, want: BadgeLowStock},
		{name: "new kept at zero stock", old: BadgeNew, newStock: 0, want: BadgeNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveBadge(tt.old, tt.newStock))
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusPending, OrderStatusReady, true},
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusReady, OrderStatusCompleted, true},
		{OrderStatusReady, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusReady, false},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusPending, OrderStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("Ready")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusReady, status)

	_, err = ParseOrderStatus("shipped")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}
