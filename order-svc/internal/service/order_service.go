package service

import (
	"context"
	"errors"
	"log/slog"

	"tomato-ordering/order-svc/internal/domain"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoQRCode      = errors.New("no upi payment recorded for order")
)

// OrderService runs the checkout flow: build, choose payment, record, pay,
// confirm.
type OrderService struct {
	orders        OrderRegistry
	payments      *PaymentService
	notifications *NotificationService
	log           *slog.Logger
}

func NewOrderService(orders OrderRegistry, payments *PaymentService, notifications *NotificationService, log *slog.Logger) *OrderService {
	return &OrderService{
		orders:        orders,
		payments:      payments,
		notifications: notifications,
		log:           log,
	}
}

// Checkout builds an order with factory and pays it with method. When the
// payment step fails the order stays registered and is returned with the
// error, so the caller can set a method and pay later.
func (s *OrderService) Checkout(ctx context.Context, factory OrderFactory, method domain.PaymentMethod) (*domain.Order, domain.Receipt, error) {
	order, err := factory.CreateOrder(ctx)
	if err != nil {
		return nil, domain.Receipt{}, err
	}
	if method != "" {
		order.SetPayment(method)
	}

	s.orders.Add(order)
	s.log.InfoContext(ctx, "order recorded",
		slog.Int("order_id", order.ID),
		slog.String("type", string(order.Type())),
		slog.Int("items", len(order.Items())),
	)

	receipt, err := s.payments.PayBill(ctx, order)
	if err != nil {
		return order, domain.Receipt{}, err
	}

	s.notifications.NotifyUser(ctx, order)
	return order, receipt, nil
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	order, ok := s.orders.Get(id)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) List() []*domain.Order {
	return s.orders.List()
}

func (s *OrderService) SetPayment(id int, method domain.PaymentMethod) error {
	order, err := s.Get(id)
	if err != nil {
		return err
	}
	if !method.Valid() {
		return domain.ErrUnknownPaymentMethod
	}
	order.SetPayment(method)
	return nil
}

// Pay charges a recorded order again. Every call is a separate payment.
func (s *OrderService) Pay(ctx context.Context, id int) (domain.Receipt, error) {
	order, err := s.Get(id)
	if err != nil {
		return domain.Receipt{}, err
	}
	return s.payments.PayBill(ctx, order)
}

func (s *OrderService) QRCode(id int) ([]byte, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	qr, ok := s.payments.QRCode(id)
	if !ok {
		return nil, ErrNoQRCode
	}
	return qr, nil
}

func (s *OrderService) Announcer() ScheduleAnnouncer {
	return s.notifications
}
