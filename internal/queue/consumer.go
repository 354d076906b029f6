package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// bookingLogPath is where the consumer appends one line per booking.
const bookingLogPath = "logs/booking.log"

// StartConsumer connects to RabbitMQ, declares the booking.confirmed
// queue and consumes it forever, appending each event to
// logs/booking.log in a single-line, human-readable format.  It runs
// a reconnect loop with capped exponential backoff and never returns;
// run it on its own goroutine.  Malformed messages are rejected
// without requeue so one bad payload cannot wedge the queue.
func StartConsumer(url string) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("booking-consumer: dial failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn); err != nil {
			log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
		}
		_ = conn.Close()
		time.Sleep(2 * time.Second)
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	deliveries, err := ch.Consume(bookingQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for d := range deliveries {
		var event BookingConfirmedEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			log.Printf("booking-consumer: bad payload: %v", err)
			_ = d.Reject(false)
			continue
		}
		if err := appendBookingLog(event); err != nil {
			log.Printf("booking-consumer: write log: %v", err)
			_ = d.Reject(true)
			continue
		}
		_ = d.Ack(false)
	}
	return fmt.Errorf("delivery channel closed")
}

// appendBookingLog writes one line per event, creating the logs
// directory on first use.
func appendBookingLog(event BookingConfirmedEvent) error {
	if err := os.MkdirAll(filepath.Dir(bookingLogPath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(bookingLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	line := fmt.Sprintf("%s booking=%d user=%s movie=%q theater=%q showtime=%s %s %s seats=%s total_cents=%d\n",
		event.ConfirmedAt, event.BookingID, event.UserID, event.MovieTitle, event.TheaterName,
		event.ShowtimeID, event.Date, event.Time, strings.Join(event.Seats, ","), event.TotalPriceCents)
	_, err = f.WriteString(line)
	return err
}
