package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AlertSender delivers the new-lead notification to the sales inbox.
type AlertSender interface {
	SendLeadAlert(payload LeadCapturedPayload) error
}

// Worker consumes lead-captured events and fires alert emails. It is fully
// decoupled from the lead store; losing an alert never loses a lead.
type Worker struct {
	Channel *amqp.Channel
	Alerts  AlertSender
}

func NewWorker(ch *amqp.Channel, alerts AlertSender) *Worker {
	return &Worker{Channel: ch, Alerts: alerts}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("registering RabbitMQ consumer: %s", err)
	}

	for d := range msgs {
		var payload LeadCapturedPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("[worker] dropping malformed lead event: %s", err)
			// No requeue: a malformed body stays malformed. Off to the DLQ.
			d.Nack(false, false)
			continue
		}

		if err := w.Alerts.SendLeadAlert(payload); err != nil {
			log.Printf("[worker] alert for lead %s failed: %s", payload.LeadID, err)
			d.Nack(false, false)
			continue
		}

		log.Printf("[worker] alert sent for lead %s (%s)", payload.LeadID, payload.Email)
		d.Ack(false)
	}
}
