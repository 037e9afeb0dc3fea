package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.crm"
	DLXName      = "ex.crm.dlx"

	TaskEventsQueue = "q.task-events"
	TaskEventsDLQ   = "q.task-events.dlq"
	TaskEventsKey   = "k.task-event"

	PromotionsQueue = "q.promotions"
	PromotionsDLQ   = "q.promotions.dlq"
	PromotionsKey   = "k.promotion"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(user, pass, host, port string) (*RabbitMQ, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, pass, host, port)

	conn, err := amqp.Dial(dsn)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir canal: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func setupTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil); err != nil {
		return err
	}
	if err := ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil); err != nil {
		return err
	}

	queues := []struct {
		name, dlq, key string
	}{
		{TaskEventsQueue, TaskEventsDLQ, TaskEventsKey},
		{PromotionsQueue, PromotionsDLQ, PromotionsKey},
	}

	for _, q := range queues {
		if _, err := ch.QueueDeclare(q.dlq, true, false, false, false, nil); err != nil {
			return err
		}
		if err := ch.QueueBind(q.dlq, q.key, DLXName, false, nil); err != nil {
			return err
		}

		// Mensagem rejeitada cai na DLX com a mesma routing key.
		args := amqp.Table{
			"x-dead-letter-exchange":    DLXName,
			"x-dead-letter-routing-key": q.key,
		}
		if _, err := ch.QueueDeclare(q.name, true, false, false, false, args); err != nil {
			return err
		}
		if err := ch.QueueBind(q.name, q.key, ExchangeName, false, nil); err != nil {
			return err
		}
	}

	return nil
}
