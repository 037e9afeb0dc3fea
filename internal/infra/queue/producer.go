package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Tipos de evento do feed de atividade (os mesmos que o sino mostra).
const (
	TaskEventAdded     = "added"
	TaskEventEdited    = "edited"
	TaskEventCancelled = "cancelled"
)

type TaskEventPayload struct {
	TaskID      string    `json:"task_id"`
	LeadID      string    `json:"lead_id"`
	Type        string    `json:"type"` // added, edited, cancelled
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type PromotionPayload struct {
	LeadID         string `json:"lead_id"`
	ClientID       string `json:"client_id"`
	Name           string `json:"name"`
	Representative string `json:"representative"`
	Email          string `json:"email"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishTaskEvent(ctx context.Context, payload TaskEventPayload) error {
	return p.publish(ctx, TaskEventsKey, payload)
}

func (p *RabbitMQProducer) PublishPromotion(ctx context.Context, payload PromotionPayload) error {
	return p.publish(ctx, PromotionsKey, payload)
}

func (p *RabbitMQProducer) publish(ctx context.Context, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
