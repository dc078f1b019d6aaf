package storage

import (
	"sync"

	"tomato-ordering/order-svc/internal/domain"
)

// Registries are append-only and shared by every request, so each one is
// guarded by its own RWMutex. Nothing is ever removed.

type RestaurantRegistry struct {
	mu          sync.RWMutex
	restaurants []*domain.Restaurant
}

func NewRestaurantRegistry() *RestaurantRegistry {
	return &RestaurantRegistry{}
}

func (r *RestaurantRegistry) Add(rest *domain.Restaurant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restaurants = append(r.restaurants, rest)
}

func (r *RestaurantRegistry) Get(id int) (*domain.Restaurant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.restaurants) - 1; i >= 0; i-- {
		if r.restaurants[i].ID == id {
			return r.restaurants[i], true
		}
	}
	return nil, false
}

func (r *RestaurantRegistry) List() []*domain.Restaurant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Restaurant, len(r.restaurants))
	copy(out, r.restaurants)
	return out
}

type OrderRegistry struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

func NewOrderRegistry() *OrderRegistry {
	return &OrderRegistry{}
}

func (r *OrderRegistry) Add(o *domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
}

// Get returns the most recently added order with the given id. IDs are
// supplied by callers and may repeat.
func (r *OrderRegistry) Get(id int) (*domain.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].ID == id {
			return r.orders[i], true
		}
	}
	return nil, false
}

func (r *OrderRegistry) List() []*domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

type UserRegistry struct {
	mu    sync.RWMutex
	users map[int]*domain.User
}

func NewUserRegistry() *UserRegistry {
	return &UserRegistry{users: make(map[int]*domain.User)}
}

// Put stores u, replacing any user with the same id.
func (r *UserRegistry) Put(u *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *UserRegistry) Get(id int) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	return u, ok
}
