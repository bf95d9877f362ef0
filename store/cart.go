package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
)

var ErrCartItemNotFound = errors.New("cart item not found")

// CartStore keeps one persisted cart per device id. Carts are transient
// state: no events are broadcast for them and they never sync across
// contexts.
type CartStore struct {
	kv *KV
	mu sync.Mutex
}

func NewCartStore(kv *KV) *CartStore {
	return &CartStore{kv: kv}
}

func (s *CartStore) load(deviceID string) models.Cart {
	cart := models.Cart{DeviceID: deviceID}
	// Corrupt or absent data reads as an empty cart.
	if _, err := s.kv.GetJSON(CartKey(deviceID), &cart); err != nil {
		return models.Cart{DeviceID: deviceID}
	}
	cart.DeviceID = deviceID
	return cart
}

func (s *CartStore) save(cart models.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	if err := s.kv.SetJSON(CartKey(cart.DeviceID), cart); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// Get returns the device's cart, empty if none was saved.
func (s *CartStore) Get(deviceID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(deviceID)
}

// SetItem sets the quantity for a product in the cart, inserting it with
// a fresh snapshot of the product when absent. A quantity of zero or
// less removes the entry.
func (s *CartStore) SetItem(deviceID string, product models.Product, quantity int) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.load(deviceID)
	if quantity <= 0 {
		cart.Items = removeItem(cart.Items, product.ID)
	} else {
		updated := false
		for i := range cart.Items {
			if cart.Items[i].ID == product.ID {
				cart.Items[i].Quantity = quantity
				cart.Items[i].AddedAt = time.Now().UTC()
				updated = true
				break
			}
		}
		if !updated {
			cart.Items = append(cart.Items, models.CartItem{
				Product:  product,
				Quantity: quantity,
				AddedAt:  time.Now().UTC(),
			})
		}
	}

	if err := s.save(cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// Remove deletes one product from the cart.
func (s *CartStore) Remove(deviceID, productID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.load(deviceID)
	trimmed := removeItem(cart.Items, productID)
	if len(trimmed) == len(cart.Items) {
		return models.Cart{}, fmt.Errorf("%w: %s", ErrCartItemNotFound, productID)
	}
	cart.Items = trimmed

	if err := s.save(cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// Clear empties the device's cart.
func (s *CartStore) Clear(deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(models.Cart{DeviceID: deviceID})
}

func removeItem(items []models.CartItem, productID string) []models.CartItem {
	out := items[:0]
	for _, item := range items {
		if item.ID != productID {
			out = append(out, item)
		}
	}
	return out
}
