package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// CampoPublisher publishes field-record events to RabbitMQ. Publishing is
// best-effort: callers treat a nil publisher or a failed publish as a no-op.
type CampoPublisher struct {
	conn              *RabbitMQConnection
	messagesPublished int64
	messagesFailed    int64
	lastPublishTime   time.Time
}

// NewCampoPublisher creates a new field-record event publisher
func NewCampoPublisher(conn *RabbitMQConnection) *CampoPublisher {
	return &CampoPublisher{
		conn:            conn,
		lastPublishTime: time.Now(),
	}
}

// Publish declares the queue and sends one event. A nil receiver is allowed
// so handlers can emit unconditionally.
func (p *CampoPublisher) Publish(ctx context.Context, eventType CampoEventType, entidad, entidadID, cedula string) {
	if p == nil {
		return
	}

	ev := CampoEvent{
		ID:        uuid.NewString(),
		EventType: eventType,
		Entidad:   entidad,
		EntidadID: entidadID,
		Cedula:    cedula,
	}

	if err := p.publish(ctx, ev); err != nil {
		p.messagesFailed++
		slog.Error("failed to publish campo event", "event_type", eventType, "entidad_id", entidadID, "error", err)
		return
	}

	p.messagesPublished++
	p.lastPublishTime = time.Now()

	slog.Info("Campo event published",
		"queue", CampoQueue,
		"event_type", eventType,
		"entidad_id", entidadID,
	)
}

func (p *CampoPublisher) publish(ctx context.Context, ev CampoEvent) error {
	_, err := p.conn.Channel.QueueDeclare(
		CampoQueue, // queue name
		true,       // durable
		false,      // delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal campo event: %w", err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",         // exchange
		CampoQueue, // routing key (queue name)
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish campo event: %w", err)
	}
	return nil
}

// GetMetrics returns publisher metrics
func (p *CampoPublisher) GetMetrics() map[string]any {
	return map[string]any{
		"messages_published": p.messagesPublished,
		"messages_failed":    p.messagesFailed,
		"last_publish_time":  p.lastPublishTime,
		"queue":              CampoQueue,
	}
}
