package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// bookingQueueName is the durable queue booking events travel on.
const bookingQueueName = "booking.confirmed"

// Publisher publishes booking events to RabbitMQ.  Publishing is
// best-effort by contract: every failure is logged and swallowed so a
// broker outage can never surface in a dialogue turn.
type Publisher struct {
	url string
}

// NewPublisher returns a publisher for the given AMQP URL.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// BookingConfirmed publishes the event to the booking.confirmed
// queue.  A fresh connection is dialed per event; booking volume in a
// single-process deployment does not justify connection pooling, and
// a dead broker then costs one dial timeout instead of poisoned
// channel state.
func (p *Publisher) BookingConfirmed(ctx context.Context, event BookingConfirmedEvent) {
	if err := p.publish(ctx, event); err != nil {
		log.Printf("queue: publish booking %d failed: %v", event.BookingID, err)
	}
}

func (p *Publisher) publish(ctx context.Context, event BookingConfirmedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx,
		"",               // default exchange
		bookingQueueName, // routing key = queue name
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
