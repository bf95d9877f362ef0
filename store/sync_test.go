package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
)

// twoContexts builds two sync shims over the same store, as two browsing
// contexts of one profile would be.
func twoContexts(t *testing.T) (*CloudSync, *CloudSync, *KV, *Bus) {
	t.Helper()
	kv := newTestKV(t)
	bus := NewBus()

	a, err := NewCloudSync(kv, bus)
	require.NoError(t, err)
	b, err := NewCloudSync(kv, bus)
	require.NoError(t, err)
	b.deviceID = "device-b" // distinct identity for the second context
	return a, b, kv, bus
}

func TestDeviceIDPersists(t *testing.T) {
	kv := newTestKV(t)
	bus := NewBus()

	a, err := NewCloudSync(kv, bus)
	require.NoError(t, err)
	b, err := NewCloudSync(kv, bus)
	require.NoError(t, err)

	assert.NotEmpty(t, a.DeviceID())
	assert.Equal(t, a.DeviceID(), b.DeviceID(), "one profile, one device id")
}

func TestPushBumpsVersion(t *testing.T) {
	a, _, _, _ := twoContexts(t)

	products := models.Catalog()[:1]
	v1, err := a.Push(products)
	require.NoError(t, err)
	v2, err := a.Push(products)
	require.NoError(t, err)

	assert.Equal(t, v1+1, v2)

	snapshot, ok := a.Pull()
	require.True(t, ok)
	assert.Equal(t, v2, snapshot.Version)
	assert.Equal(t, a.DeviceID(), snapshot.DeviceID)
	assert.Equal(t, products, snapshot.Products)
}

func TestConcurrentPushesMintDistinctVersions(t *testing.T) {
	a, b, _, _ := twoContexts(t)

	const pushesPerContext = 50
	products := models.Catalog()[:1]
	versions := make(chan int64, 2*pushesPerContext)

	var wg sync.WaitGroup
	for _, shim := range []*CloudSync{a, b} {
		wg.Add(1)
		go func(c *CloudSync) {
			defer wg.Done()
			for i := 0; i < pushesPerContext; i++ {
				v, err := c.Push(products)
				assert.NoError(t, err)
				versions <- v
			}
		}(shim)
	}
	wg.Wait()
	close(versions)

	seen := make(map[int64]bool)
	var max int64
	for v := range versions {
		assert.False(t, seen[v], "version %d minted twice", v)
		seen[v] = true
		if v > max {
			max = v
		}
	}
	assert.Len(t, seen, 2*pushesPerContext)
	assert.Equal(t, int64(2*pushesPerContext), max, "counter must advance by exactly one per push")
}

func TestPullEmptyAndCorrupt(t *testing.T) {
	a, _, kv, _ := twoContexts(t)

	_, ok := a.Pull()
	assert.False(t, ok, "no snapshot yet")

	require.NoError(t, kv.SetString(KeySync, "{broken"))
	_, ok = a.Pull()
	assert.False(t, ok, "corruption reads as no data, never an error")
}

func TestHasNewer(t *testing.T) {
	a, b, _, _ := twoContexts(t)

	assert.False(t, a.HasNewer())

	_, err := a.Push(models.Catalog()[:1])
	require.NoError(t, err)

	assert.False(t, a.HasNewer(), "the pusher already applied its own write")
	assert.True(t, b.HasNewer(), "the other context has not")
}

func TestLastWriterWinsConvergence(t *testing.T) {
	a, b, kv, bus := twoContexts(t)

	first := models.Catalog()[:1]
	second := models.Catalog()[:2]

	_, err := a.Push(first)
	require.NoError(t, err)
	v2, err := b.Push(second)
	require.NoError(t, err)

	// A third context observing both writes adopts only the later one.
	c, err := NewCloudSync(kv, bus)
	require.NoError(t, err)
	c.deviceID = "device-c"
	c.lastApplied = 0 // fresh context, nothing applied yet

	adopted := make(chan []models.Product, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.PollInterval = 10 * time.Millisecond
	go c.Listen(ctx, func(products []models.Product) {
		adopted <- products
	})

	select {
	case products := <-adopted:
		assert.Len(t, products, 2, "only the newest snapshot is adopted")
	case <-time.After(2 * time.Second):
		t.Fatal("listener never adopted the snapshot")
	}

	assert.False(t, c.HasNewer())
	snapshot, ok := c.Pull()
	require.True(t, ok)
	assert.Equal(t, v2, snapshot.Version)
}

func TestListenerSkipsOwnPushes(t *testing.T) {
	a, _, _, _ := twoContexts(t)
	a.PollInterval = 0 // bus path only

	adopted := make(chan []models.Product, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.Listen(ctx, func(products []models.Product) {
		adopted <- products
	})
	time.Sleep(20 * time.Millisecond) // let the listener subscribe

	_, err := a.Push(models.Catalog()[:1])
	require.NoError(t, err)

	select {
	case <-adopted:
		t.Fatal("a context must not adopt its own push")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestListenerAdoptsPeerPush(t *testing.T) {
	a, b, _, _ := twoContexts(t)
	b.PollInterval = 0 // bus path only

	adopted := make(chan []models.Product, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.Listen(ctx, func(products []models.Product) {
		adopted <- products
	})
	time.Sleep(20 * time.Millisecond)

	_, err := a.Push(models.Catalog()[:3])
	require.NoError(t, err)

	select {
	case products := <-adopted:
		assert.Len(t, products, 3)
	case <-time.After(2 * time.Second):
		t.Fatal("peer push never adopted")
	}

	// Stale replays do not reapply
	assert.False(t, b.HasNewer())
}

func TestAppliedVersionSurvivesRestart(t *testing.T) {
	a, _, kv, bus := twoContexts(t)

	_, err := a.Push(models.Catalog()[:1])
	require.NoError(t, err)

	// Same device comes back in a new shim instance
	restarted, err := NewCloudSync(kv, bus)
	require.NoError(t, err)
	assert.Equal(t, a.DeviceID(), restarted.DeviceID())
	assert.False(t, restarted.HasNewer(), "applied version is persisted per device")
}
