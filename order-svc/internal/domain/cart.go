package domain

import "sync"

// Cart collects items against a single restaurant. Duplicates are repeated
// selections.
type Cart struct {
	Restaurant *Restaurant

	mu    sync.RWMutex
	items []MenuItem
}

func NewCart(r *Restaurant) *Cart {
	return &Cart{Restaurant: r}
}

func (c *Cart) Add(item MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

func (c *Cart) Items() []MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TotalCost() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sumPrices(c.items)
}

func sumPrices(items []MenuItem) int {
	total := 0
	for _, item := range items {
		total += item.Price
	}
	return total
}

type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Cart    *Cart  `json:"-"`
}

// NewUser creates a user whose cart is bound to r for the user's lifetime.
func NewUser(id int, name, address string, r *Restaurant) *User {
	return &User{ID: id, Name: name, Address: address, Cart: NewCart(r)}
}
