package domain

import "sync"

type MenuItem struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

func NewMenuItem(code, name string, price int) (MenuItem, error) {
	if price < 0 {
		return MenuItem{}, ErrInvalidAmount
	}
	return MenuItem{Code: code, Name: name, Price: price}, nil
}

// Restaurant owns an append-only menu. Codes are not checked for uniqueness.
type Restaurant struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`

	mu   sync.RWMutex
	menu []MenuItem
}

func NewRestaurant(id int, name, location string) *Restaurant {
	return &Restaurant{ID: id, Name: name, Location: location}
}

func (r *Restaurant) AddMenuItem(item MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menu = append(r.menu, item)
}

// Menu returns a copy of the menu in insertion order.
func (r *Restaurant) Menu() []MenuItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]MenuItem, len(r.menu))
	copy(out, r.menu)
	return out
}

// FindItem returns the first menu item carrying code.
func (r *Restaurant) FindItem(code string) (MenuItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.menu {
		if item.Code == code {
			return item, true
		}
	}
	return MenuItem{}, false
}
