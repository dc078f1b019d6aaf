package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tomato-ordering/order-svc/internal/domain"
	"tomato-ordering/order-svc/internal/metrics"

	"github.com/google/uuid"
)

// NotificationService reports status lines. Delivery is fire-and-forget: a
// failing notifier is logged and counted, never returned to the caller.
type NotificationService struct {
	notifiers []Notifier
	log       *slog.Logger
	now       func() time.Time
}

func NewNotificationService(log *slog.Logger, notifiers ...Notifier) *NotificationService {
	return &NotificationService{
		notifiers: notifiers,
		log:       log,
		now:       time.Now,
	}
}

func (s *NotificationService) NotifyUser(ctx context.Context, order *domain.Order) domain.Event {
	event := s.newEvent(domain.EventOrderConfirmed, order.ID)
	event.OrderType = order.Type()
	if order.User != nil {
		event.UserID = order.User.ID
	}
	event.Message = fmt.Sprintf("Order confirmed! Type: %s", order.Type())
	s.publish(ctx, event)
	return event
}

func (s *NotificationService) AnnounceSchedule(ctx context.Context, orderID int, at string) domain.Event {
	event := s.newEvent(domain.EventOrderScheduled, orderID)
	event.ScheduledAt = at
	event.Message = fmt.Sprintf("Order scheduled at %s", at)
	s.publish(ctx, event)
	return event
}

func (s *NotificationService) PaymentCompleted(ctx context.Context, order *domain.Order, receipt domain.Receipt) domain.Event {
	event := s.newEvent(domain.EventPaymentCompleted, receipt.OrderID)
	event.OrderType = order.Type()
	event.Amount = receipt.Amount
	event.Method = receipt.Method
	event.Message = receipt.Message
	s.publish(ctx, event)
	return event
}

func (s *NotificationService) newEvent(kind string, orderID int) domain.Event {
	return domain.Event{
		ID:        uuid.NewString(),
		Type:      kind,
		OrderID:   orderID,
		Timestamp: s.now().UTC(),
	}
}

func (s *NotificationService) publish(ctx context.Context, event domain.Event) {
	s.log.InfoContext(ctx, event.Message,
		slog.String("event", event.Type),
		slog.String("event_id", event.ID),
		slog.Int("order_id", event.OrderID),
	)
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, event); err != nil {
			metrics.NotificationsFailed.WithLabelValues(n.Name()).Inc()
			s.log.WarnContext(ctx, "notification not delivered",
				slog.String("sink", n.Name()),
				slog.String("event_id", event.ID),
				slog.Any("error", err),
			)
		}
	}
}
