package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// WelcomeMailer é o contrato mínimo que o worker precisa para dar as
// boas-vindas ao cliente recém promovido.
type WelcomeMailer interface {
	SendClientWelcome(to, name, representative string) error
}

// Worker consome os eventos de promoção e dispara o e-mail de boas-vindas
// fora do ciclo request/response da API.
type Worker struct {
	Channel *amqp.Channel
	Mailer  WelcomeMailer
}

func NewWorker(ch *amqp.Channel, mailer WelcomeMailer) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // ack manual
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload PromotionPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				// Mensagem malformada: rejeita sem requeue para não travar a fila.
				log.Printf("[WORKER] JSON inválido: %s", err)
				d.Nack(false, false)
				continue
			}

			if payload.Email == "" {
				// Sem destinatário não tem o que fazer; tira da fila.
				d.Ack(false)
				continue
			}

			if err := w.Mailer.SendClientWelcome(payload.Email, payload.Name, payload.Representative); err != nil {
				log.Printf("[WORKER] erro ao enviar boas-vindas para %s: %s", payload.Email, err)
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] boas-vindas enviadas para o cliente %s", payload.Name)
			d.Ack(false)
		}
	}()

	log.Printf("[WORKER] aguardando na fila '%s'", queueName)
	<-forever
}
