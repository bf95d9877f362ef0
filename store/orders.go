package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrEmptyOrder     = errors.New("order has no items")
	ErrBackwardStatus = errors.New("order status cannot move backward")
)

// OrderStore is the append-only pickup order log. Orders are immutable
// once created except for their status, which only moves forward.
type OrderStore struct {
	kv  *KV
	bus *Bus

	mu     sync.RWMutex
	orders []models.Order // insertion order
}

func NewOrderStore(kv *KV, bus *Bus) (*OrderStore, error) {
	s := &OrderStore{kv: kv, bus: bus}
	if _, err := kv.GetJSON(KeyOrders, &s.orders); err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return s, nil
}

// Append creates a pending order from the given cart items. The items
// are deep-copied: the order is a snapshot at submission time, not a
// live view of the products. Submitting the same cart twice yields two
// orders with equal content but distinct ids.
func (s *OrderStore) Append(items []models.CartItem) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	var total float64
	for _, item := range snapshot {
		total += item.Price * float64(item.Quantity)
	}

	order := models.Order{
		ID:        newEntryID(now),
		Items:     snapshot,
		Total:     total,
		Timestamp: now,
		Status:    models.OrderStatusPending,
	}
	s.orders = append(s.orders, order)

	if err := s.kv.SetJSON(KeyOrders, s.orders); err != nil {
		return models.Order{}, fmt.Errorf("persist orders: %w", err)
	}
	s.bus.Publish(Event{Type: EventNewOrder, Payload: order})
	return order, nil
}

// List returns all orders in submission order.
func (s *OrderStore) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns one order by id.
func (s *OrderStore) Get(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return models.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
}

// UpdateStatus advances an order along pending -> ready -> completed.
// Skipping ahead is fine, going backward is not. The status carries no
// inventory meaning, so nothing else is validated here.
func (s *OrderStore) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if !s.orders[i].Status.CanTransition(status) {
			return models.Order{}, fmt.Errorf("%w: %s -> %s", ErrBackwardStatus, s.orders[i].Status, status)
		}
		s.orders[i].Status = status

		if err := s.kv.SetJSON(KeyOrders, s.orders); err != nil {
			return models.Order{}, fmt.Errorf("persist orders: %w", err)
		}
		s.bus.Publish(Event{Type: EventOrderUpdate, Payload: s.orders[i]})
		return s.orders[i], nil
	}
	return models.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
}
