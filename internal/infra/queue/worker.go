package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier is the contract the worker needs from the mail layer.
type Notifier interface {
	SendContactAlert(name, email, phone, source, question string) error
}

// Worker consumes contact-captured events and notifies the care team. It is
// fully decoupled from the database; everything it needs rides in the payload.
type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
}

func NewWorker(ch *amqp.Channel, notifier Notifier) *Worker {
	return &Worker{Channel: ch, Notifier: notifier}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ registering RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ContactCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] invalid JSON: %s", err)
				// Malformed message. Reject without requeue so it dead-letters
				// instead of wedging the queue.
				d.Nack(false, false)
				continue
			}

			// Newsletter signups are high volume and low urgency; only
			// seminar and call leads page the care team.
			if payload.Source == "newsletter" {
				d.Ack(false)
				continue
			}

			err := w.Notifier.SendContactAlert(
				payload.Name, payload.Email, payload.Phone, payload.Source, payload.Question,
			)
			if err != nil {
				log.Printf("❌ [WORKER] notify failed for contact %s: %v", payload.ContactID, err)
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] care team notified about %s lead %s", payload.Source, payload.ContactID)
			d.Ack(false)
		}
	}()

	log.Printf("👷 Worker listening on %s", queueName)
	<-forever
}
