package domain

import (
	"fmt"
	"strings"
	"sync"
)

type OrderType string

const (
	OrderNormal   OrderType = "NORMAL"
	OrderDelivery OrderType = "DELIVERY"
	OrderPickup   OrderType = "PICKUP"
)

func ParseOrderType(s string) (OrderType, error) {
	switch OrderType(strings.ToUpper(strings.TrimSpace(s))) {
	case "", OrderNormal:
		return OrderNormal, nil
	case OrderDelivery:
		return OrderDelivery, nil
	case OrderPickup:
		return OrderPickup, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrderType, s)
}

// Fulfillment selects the order variant and carries its payload. The zero
// value is a NORMAL order.
type Fulfillment struct {
	Type    OrderType
	Address string
	Counter string
}

// Order is one of three variants sharing the common fields. Only the payload
// matching Type is meaningful: Address for DELIVERY, Counter for PICKUP.
type Order struct {
	ID         int
	User       *User
	Restaurant *Restaurant

	items   []MenuItem
	kind    OrderType
	address string
	counter string

	mu      sync.Mutex
	payment PaymentMethod
}

func NewOrder(id int, user *User, restaurant *Restaurant, items []MenuItem) *Order {
	return newOrder(id, user, restaurant, items, OrderNormal)
}

func NewDeliveryOrder(id int, user *User, restaurant *Restaurant, items []MenuItem, address string) *Order {
	o := newOrder(id, user, restaurant, items, OrderDelivery)
	o.address = address
	return o
}

func NewPickupOrder(id int, user *User, restaurant *Restaurant, items []MenuItem, counter string) *Order {
	o := newOrder(id, user, restaurant, items, OrderPickup)
	o.counter = counter
	return o
}

func newOrder(id int, user *User, restaurant *Restaurant, items []MenuItem, kind OrderType) *Order {
	snapshot := make([]MenuItem, len(items))
	copy(snapshot, items)
	return &Order{
		ID:         id,
		User:       user,
		Restaurant: restaurant,
		items:      snapshot,
		kind:       kind,
	}
}

func (o *Order) Type() OrderType {
	return o.kind
}

func (o *Order) DeliveryAddress() (string, bool) {
	return o.address, o.kind == OrderDelivery
}

func (o *Order) PickupCounter() (string, bool) {
	return o.counter, o.kind == OrderPickup
}

// SetPayment replaces any previously chosen method.
func (o *Order) SetPayment(m PaymentMethod) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.payment = m
}

func (o *Order) PaymentMethod() (PaymentMethod, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.payment, o.payment != ""
}

// Items returns a copy of the items frozen at construction.
func (o *Order) Items() []MenuItem {
	out := make([]MenuItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Total() int {
	return sumPrices(o.items)
}

// PayBill sums the order's own items and pays them with the current method.
// Each call is a new payment.
func (o *Order) PayBill() (Receipt, error) {
	m, ok := o.PaymentMethod()
	if !ok {
		return Receipt{}, ErrMissingPaymentMethod
	}
	receipt, err := m.Pay(o.Total())
	if err != nil {
		return Receipt{}, err
	}
	receipt.OrderID = o.ID
	return receipt, nil
}
