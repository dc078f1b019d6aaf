package service

import (
	"context"

	"tomato-ordering/order-svc/internal/domain"
	"tomato-ordering/order-svc/internal/metrics"
)

// NormalOrderFactory builds an order from the user's cart as it is at call
// time. The cart is left untouched, so calling it twice yields two orders
// with the same items.
type NormalOrderFactory struct {
	User        *domain.User
	ID          int
	Fulfillment domain.Fulfillment
}

func NewNormalOrderFactory(user *domain.User, id int) *NormalOrderFactory {
	return &NormalOrderFactory{User: user, ID: id}
}

func (f *NormalOrderFactory) CreateOrder(_ context.Context) (*domain.Order, error) {
	items, err := cartItems(f.User)
	if err != nil {
		return nil, err
	}
	return buildOrder(f.ID, f.User, items, f.Fulfillment)
}

// ScheduledOrderFactory announces Time before building the order. The time is
// not kept on the order.
type ScheduledOrderFactory struct {
	User        *domain.User
	ID          int
	Time        string
	Fulfillment domain.Fulfillment
	Announcer   ScheduleAnnouncer
}

func NewScheduledOrderFactory(user *domain.User, id int, at string, announcer ScheduleAnnouncer) *ScheduledOrderFactory {
	return &ScheduledOrderFactory{User: user, ID: id, Time: at, Announcer: announcer}
}

func (f *ScheduledOrderFactory) CreateOrder(ctx context.Context) (*domain.Order, error) {
	items, err := cartItems(f.User)
	if err != nil {
		return nil, err
	}
	if f.Announcer != nil {
		f.Announcer.AnnounceSchedule(ctx, f.ID, f.Time)
	}
	return buildOrder(f.ID, f.User, items, f.Fulfillment)
}

func cartItems(user *domain.User) ([]domain.MenuItem, error) {
	if user == nil || user.Cart == nil {
		return nil, domain.ErrEmptyOrder
	}
	items := user.Cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	return items, nil
}

func buildOrder(id int, user *domain.User, items []domain.MenuItem, f domain.Fulfillment) (*domain.Order, error) {
	restaurant := user.Cart.Restaurant

	var order *domain.Order
	switch f.Type {
	case "", domain.OrderNormal:
		order = domain.NewOrder(id, user, restaurant, items)
	case domain.OrderDelivery:
		address := f.Address
		if address == "" {
			address = user.Address
		}
		order = domain.NewDeliveryOrder(id, user, restaurant, items, address)
	case domain.OrderPickup:
		order = domain.NewPickupOrder(id, user, restaurant, items, f.Counter)
	default:
		return nil, domain.ErrUnknownOrderType
	}

	metrics.OrdersCreated.WithLabelValues(string(order.Type())).Inc()
	return order, nil
}
