package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Event is the envelope written to the site events queue.
type Event struct {
	Name       string      `json:"name"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type Publisher struct {
	conn  *amqp.Connection
	queue string
	log   *zap.Logger
}

// NewPublisher returns a publisher bound to a durable queue. A nil connection
// yields a publisher that drops events, which keeps local setups without a
// broker working.
func NewPublisher(conn *amqp.Connection, queue string, log *zap.Logger) *Publisher {
	return &Publisher{conn: conn, queue: queue, log: log}
}

func (p *Publisher) Publish(ctx context.Context, name string, payload interface{}) error {
	if p == nil {
		return nil
	}
	if p.conn == nil || p.conn.IsClosed() {
		p.log.Debug("event dropped, no broker", zap.String("name", name))
		return nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	body, err := sonic.Marshal(Event{Name: name, OccurredAt: time.Now().UTC(), Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         name,
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}

	p.log.Sugar().Debugw("event published", "name", name, "queue", p.queue)
	return nil
}
