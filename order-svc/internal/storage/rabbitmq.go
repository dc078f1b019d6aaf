package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tomato-ordering/order-svc/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher is the part of *amqp.Channel the notifier needs.
type AMQPPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitNotifier struct {
	Channel  AMQPPublisher
	Exchange string
}

// NewRabbitNotifier declares the fanout exchange events are published on.
func NewRabbitNotifier(ch *amqp.Channel, exchange string) (*RabbitNotifier, error) {
	if err := ch.ExchangeDeclare(
		exchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &RabbitNotifier{Channel: ch, Exchange: exchange}, nil
}

func (n *RabbitNotifier) Name() string { return "rabbitmq" }

func (n *RabbitNotifier) Notify(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return n.Channel.PublishWithContext(ctx, n.Exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   event.ID,
		Type:        event.Type,
		Timestamp:   event.Timestamp,
		Body:        body,
	})
}
