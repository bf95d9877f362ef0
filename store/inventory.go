package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
)

var ErrProductNotFound = errors.New("product not found")

// InventoryStore is the single source of truth for live product stock in
// this context. State lives in memory behind one lock; every mutation
// persists the full list, pushes a cloud-sync snapshot, and notifies
// subscribers.
type InventoryStore struct {
	kv    *KV
	cloud *CloudSync
	bus   *Bus

	mu       sync.RWMutex
	products map[string]models.Product
	order    []string // stable listing order: catalog first, then user-added
}

func NewInventoryStore(kv *KV, cloud *CloudSync, bus *Bus) *InventoryStore {
	return &InventoryStore{
		kv:       kv,
		cloud:    cloud,
		bus:      bus,
		products: make(map[string]models.Product),
	}
}

// Initialize seeds from the static catalog on first run and reconciles
// persisted data against it on later runs: catalog products missing from
// the persisted list get catalog defaults, persisted products unknown to
// the catalog (user-added) are kept. Deterministic, and it never
// resurrects a stock adjustment that was persisted.
func (s *InventoryStore) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var persisted []models.Product
	found, err := s.kv.GetJSON(KeyInventory, &persisted)
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}

	catalog := models.Catalog()
	if !found {
		s.replaceLocked(catalog)
		return s.kv.SetJSON(KeyInventory, s.listLocked())
	}

	byID := make(map[string]models.Product, len(persisted))
	for _, p := range persisted {
		byID[p.ID] = p
	}

	merged := make([]models.Product, 0, len(catalog))
	inCatalog := make(map[string]bool, len(catalog))
	for _, def := range catalog {
		inCatalog[def.ID] = true
		if saved, ok := byID[def.ID]; ok {
			merged = append(merged, saved)
		} else {
			merged = append(merged, def)
		}
	}
	for _, p := range persisted {
		if !inCatalog[p.ID] {
			merged = append(merged, p)
		}
	}

	s.replaceLocked(merged)
	return s.kv.SetJSON(KeyInventory, s.listLocked())
}

func (s *InventoryStore) replaceLocked(products []models.Product) {
	s.products = make(map[string]models.Product, len(products))
	s.order = make([]string, 0, len(products))
	for _, p := range products {
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	}
}

func (s *InventoryStore) listLocked() []models.Product {
	out := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.products[id])
	}
	return out
}

// List returns a snapshot of all products in stable order.
func (s *InventoryStore) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLocked()
}

// GetProduct returns the current snapshot of one product.
func (s *InventoryStore) GetProduct(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

// afterMutateLocked persists, pushes to the cloud shim, and broadcasts.
// Callers hold the write lock, so mutations serialize end to end.
func (s *InventoryStore) afterMutateLocked() error {
	products := s.listLocked()
	if err := s.kv.SetJSON(KeyInventory, products); err != nil {
		return fmt.Errorf("persist inventory: %w", err)
	}
	if _, err := s.cloud.Push(products); err != nil {
		return err
	}
	s.bus.Publish(Event{Type: EventInventoryUpdate, Payload: products})
	return nil
}

// setStockLocked applies the clamp and badge rules shared by every
// stock-mutating operation.
func setStockLocked(p *models.Product, newStock int) {
	if newStock < 0 {
		newStock = 0
	}
	p.InStock = newStock
	p.Badge = models.DeriveBadge(p.Badge, newStock)
}

// UpdateStock sets stock to max(0, newStock) and returns the updated
// product.
func (s *InventoryStore) UpdateStock(id string, newStock int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	setStockLocked(&p, newStock)
	s.products[id] = p

	if err := s.afterMutateLocked(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// DecreaseStock subtracts quantity from the current stock with the same
// clamp and badge rules; a negative quantity adds stock back. The read
// and write happen under one lock, so interleaved callers cannot lose
// updates.
func (s *InventoryStore) DecreaseStock(id string, quantity int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	setStockLocked(&p, p.InStock-quantity)
	s.products[id] = p

	if err := s.afterMutateLocked(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// AddProduct inserts a new product under a fresh collision-resistant id.
func (s *InventoryStore) AddProduct(data models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data.ID = uuid.NewString()
	if data.InStock < 0 {
		data.InStock = 0
	}
	data.Badge = models.DeriveBadge(data.Badge, data.InStock)

	s.products[data.ID] = data
	s.order = append(s.order, data.ID)

	if err := s.afterMutateLocked(); err != nil {
		return models.Product{}, err
	}
	return data, nil
}

// Adopt replaces the in-memory state with a synced snapshot and persists
// it. No push happens here; re-pushing an adopted snapshot would loop.
func (s *InventoryStore) Adopt(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replaceLocked(products)
	if err := s.kv.SetJSON(KeyInventory, s.listLocked()); err != nil {
		return fmt.Errorf("persist adopted inventory: %w", err)
	}
	s.bus.Publish(Event{Type: EventInventoryUpdate, Payload: s.listLocked()})
	return nil
}
