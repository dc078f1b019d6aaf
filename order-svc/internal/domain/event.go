package domain

import "time"

const (
	EventOrderScheduled   = "order_scheduled"
	EventPaymentCompleted = "payment_completed"
	EventOrderConfirmed   = "order_confirmed"
)

// Event is what notifiers publish. Message carries the human readable line.
type Event struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	OrderID     int           `json:"order_id"`
	UserID      int           `json:"user_id,omitempty"`
	OrderType   OrderType     `json:"order_type,omitempty"`
	Amount      int           `json:"amount,omitempty"`
	Method      PaymentMethod `json:"method,omitempty"`
	ScheduledAt string        `json:"scheduled_at,omitempty"`
	Message     string        `json:"message"`
	Timestamp   time.Time     `json:"timestamp"`
}

// OrderView is the JSON shape of an order.
type OrderView struct {
	ID            int           `json:"id"`
	UserID        int           `json:"user_id"`
	RestaurantID  int           `json:"restaurant_id"`
	Type          OrderType     `json:"type"`
	Address       string        `json:"address,omitempty"`
	Counter       string        `json:"counter,omitempty"`
	Items         []MenuItem    `json:"items"`
	Total         int           `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
}

func (o *Order) View() OrderView {
	v := OrderView{
		ID:    o.ID,
		Type:  o.kind,
		Items: o.Items(),
		Total: o.Total(),
	}
	if o.User != nil {
		v.UserID = o.User.ID
	}
	if o.Restaurant != nil {
		v.RestaurantID = o.Restaurant.ID
	}
	if addr, ok := o.DeliveryAddress(); ok {
		v.Address = addr
	}
	if counter, ok := o.PickupCounter(); ok {
		v.Counter = counter
	}
	v.PaymentMethod, _ = o.PaymentMethod()
	return v
}
