package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

const orderQueue = "order_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the durable
// order-events queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() // Close connection if channel creation fails
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		orderQueue, // name
		true,       // durable (persists messages across broker restarts)
		false,      // delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s queue: %w", orderQueue, err)
	}

	log.Printf("RabbitMQ client connected and %s queue declared.", orderQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishOrderCreated publishes an order.created event to the order-events
// queue. The payload is marshaled to JSON.
func (c *Client) PublishOrderCreated(orderData map[string]interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(orderData)
	if err != nil {
		return fmt.Errorf("failed to marshal order data to JSON: %w", err)
	}

	err = c.channel.Publish(
		"",         // exchange: default exchange
		orderQueue, // routing key: the queue name
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Make message persistent
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Printf(" [x] Sent order event: %s", body)
	return nil
}

// ConsumeOrderEvents registers a consumer on the order-events queue and
// dispatches each delivery to messageHandler. A handler error nacks the
// message for redelivery; success acks it.
func (c *Client) ConsumeOrderEvents(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := c.channel.QueueDeclare(
		orderQueue, // name
		true,       // durable
		false,      // delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue for consuming: %w", err)
	}

	msgs, err := c.channel.Consume(
		queue.Name, // queue
		"",         // consumer tag
		false,      // auto-ack: false so we acknowledge manually
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf(" [*] Waiting for order events.")

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				log.Printf("Error processing message %d: %v", msg.DeliveryTag, err)
				// Requeue once; unprocessable messages should move to a
				// dead-letter queue before this loops.
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, requeueErr)
				}
			} else {
				if ackErr := msg.Ack(false); ackErr != nil {
					log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
				}
			}
		}
	}()

	return nil
}
