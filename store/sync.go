package store

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
)

// CloudSync approximates eventual consistency of the inventory across
// contexts sharing one store, without a server. A push writes a whole
// versioned snapshot; readers adopt it only if its version is strictly
// greater than the last one they applied (last-writer-wins, whole
// snapshot, no per-field merge).
//
// Only inventory syncs. Message and order logs stay per-context; that
// gap is inherited from the source app and left open on purpose.
type CloudSync struct {
	kv  *KV
	bus *Bus

	// PollInterval paces the fallback check for contexts that do not
	// share this process's bus. Zero disables polling.
	PollInterval time.Duration

	mu          sync.Mutex
	deviceID    string
	lastApplied int64
}

// syncNotice is the bus payload for a push, carrying just enough for a
// listener to decide whether to pull.
type syncNotice struct {
	Version  int64  `json:"version"`
	DeviceID string `json:"deviceId"`
}

// NewCloudSync loads or creates the profile's device identity and the
// caller's last-applied version.
func NewCloudSync(kv *KV, bus *Bus) (*CloudSync, error) {
	deviceID, ok, err := kv.GetString(KeyDeviceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		deviceID = "device-" + uuid.NewString()
		if err := kv.SetString(KeyDeviceID, deviceID); err != nil {
			return nil, err
		}
	}

	c := &CloudSync{
		kv:           kv,
		bus:          bus,
		PollInterval: 2 * time.Second,
		deviceID:     deviceID,
	}

	if raw, ok, err := kv.GetString(c.appliedKey()); err != nil {
		return nil, err
	} else if ok {
		if v, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
			c.lastApplied = v
		}
	}
	return c, nil
}

// DeviceID identifies this context. It is used only to suppress
// self-notification, never for authorization.
func (c *CloudSync) DeviceID() string {
	return c.deviceID
}

func (c *CloudSync) appliedKey() string {
	return KeySyncVersion + ":" + c.deviceID
}

// Push writes a new snapshot with the next version of the shared counter
// and notifies listeners. Returns the version written.
//
// The read-increment-write of the counter and the snapshot write happen
// in one KV transaction, so concurrent pushes from any context mint
// strictly increasing, never duplicated versions.
func (c *CloudSync) Push(products []models.Product) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var version int64
	err := c.kv.Update(func(tx *Tx) error {
		if raw, ok, err := tx.GetString(KeySyncVersion); err != nil {
			return err
		} else if ok {
			if v, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
				version = v
			}
		}
		version++

		snapshot := models.SyncSnapshot{
			Products:    products,
			Version:     version,
			DeviceID:    c.deviceID,
			LastUpdated: time.Now().UTC(),
		}
		if err := tx.SetJSON(KeySync, snapshot); err != nil {
			return fmt.Errorf("push snapshot: %w", err)
		}
		if err := tx.SetString(KeySyncVersion, strconv.FormatInt(version, 10)); err != nil {
			return err
		}
		return tx.SetString(c.appliedKey(), strconv.FormatInt(version, 10))
	})
	if err != nil {
		return 0, err
	}

	c.lastApplied = version
	c.bus.Publish(Event{Type: EventCloudSync, Payload: syncNotice{Version: version, DeviceID: c.deviceID}})
	return version, nil
}

// Pull returns the last persisted snapshot, or false if none exists or
// it cannot be parsed. It never fails upward; corruption reads as "no
// data" and callers fall back to catalog defaults.
func (c *CloudSync) Pull() (models.SyncSnapshot, bool) {
	var snapshot models.SyncSnapshot
	ok, err := c.kv.GetJSON(KeySync, &snapshot)
	if err != nil {
		log.Printf("⚠️ Cloud sync pull failed: %v", err)
		return models.SyncSnapshot{}, false
	}
	return snapshot, ok
}

// HasNewer reports whether the stored snapshot is ahead of what this
// context last applied.
func (c *CloudSync) HasNewer() bool {
	snapshot, ok := c.Pull()
	if !ok {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot.Version > c.lastApplied
}

// maybeAdopt pulls and, if the snapshot is strictly newer, records the
// version and hands the products to onSync.
func (c *CloudSync) maybeAdopt(onSync func([]models.Product)) {
	snapshot, ok := c.Pull()
	if !ok {
		return
	}

	c.mu.Lock()
	if snapshot.Version <= c.lastApplied {
		c.mu.Unlock()
		return
	}
	c.lastApplied = snapshot.Version
	if err := c.kv.SetString(c.appliedKey(), strconv.FormatInt(snapshot.Version, 10)); err != nil {
		log.Printf("⚠️ Failed to persist applied sync version: %v", err)
	}
	c.mu.Unlock()

	onSync(snapshot.Products)
}

// Listen runs until ctx is done, adopting newer snapshots as they
// appear. Two paths feed it: bus notifications from pushes in this
// process (skipping our own), and a poll ticker for writes that arrived
// through the shared file without a bus event.
func (c *CloudSync) Listen(ctx context.Context, onSync func([]models.Product)) {
	events, cancel := c.bus.Subscribe()
	defer cancel()

	var tick <-chan time.Time
	if c.PollInterval > 0 {
		ticker := time.NewTicker(c.PollInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			if evt.Type != EventCloudSync {
				continue
			}
			if notice, ok := evt.Payload.(syncNotice); ok && notice.DeviceID == c.deviceID {
				continue
			}
			c.maybeAdopt(onSync)
		case <-tick:
			c.maybeAdopt(onSync)
		}
	}
}
