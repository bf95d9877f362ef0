package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
)

func TestCartLifecycle(t *testing.T) {
	carts := NewCartStore(newTestKV(t))
	ibuprofen := models.Catalog()[0]
	lozenges := models.Catalog()[10]

	cart := carts.Get("device-a")
	assert.Empty(t, cart.Items)

	cart, err := carts.SetItem("device-a", ibuprofen, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 17.98, cart.Total(), 1e-9)

	// Same product updates in place, one entry per product id
	cart, err = carts.SetItem("device-a", ibuprofen, 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	cart, err = carts.SetItem("device-a", lozenges, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 4, cart.ItemCount())

	cart, err = carts.Remove("device-a", ibuprofen.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, lozenges.ID, cart.Items[0].ID)

	require.NoError(t, carts.Clear("device-a"))
	assert.Empty(t, carts.Get("device-a").Items)
}

func TestCartZeroQuantityRemoves(t *testing.T) {
	carts := NewCartStore(newTestKV(t))
	ibuprofen := models.Catalog()[0]

	_, err := carts.SetItem("device-a", ibuprofen, 2)
	require.NoError(t, err)
	cart, err := carts.SetItem("device-a", ibuprofen, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartsAreScopedPerDevice(t *testing.T) {
	carts := NewCartStore(newTestKV(t))
	ibuprofen := models.Catalog()[0]

	_, err := carts.SetItem("device-a", ibuprofen, 1)
	require.NoError(t, err)

	assert.Empty(t, carts.Get("device-b").Items)
}

func TestCartRemoveMissing(t *testing.T) {
	carts := NewCartStore(newTestKV(t))

	_, err := carts.Remove("device-a", "1")
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}
