package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Message is consumed message.
type Message struct {
	ID          string
	Body        []byte
	Redelivered bool
}

// HandlerFunc is function which handles messages.
type HandlerFunc func(ctx context.Context, message Message) error

// RabbitMQ consumes and publishes amqp messages.
type RabbitMQ struct {
	channel   *amqp.Channel
	exchange  string
	isRunning chan struct{}
}

// NewRabbitMQ returns new RabbitMQ.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}
	mq := RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}

	return &mq, nil
}

// DeclareTopology declares durable direct exchange and queue bound to it with routing key.
func (mq *RabbitMQ) DeclareTopology(queue, routingKey string) error {
	err := mq.channel.ExchangeDeclare(
		mq.exchange,
		amqp.ExchangeDirect,
		true,  // durable
		false, // auto delete
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("can't declare exchange %q: %w", mq.exchange, err)
	}

	if _, err := mq.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare queue %q: %w", queue, err)
	}

	if err := mq.channel.QueueBind(queue, routingKey, mq.exchange, false, nil); err != nil {
		return fmt.Errorf("can't bind queue %q: %w", queue, err)
	}

	return nil
}

// Publish publishes persistent message to routing key.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey, messageID string, message []byte) error {
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    time.Now().UTC(),
		Body:         message,
	}

	return mq.channel.PublishWithContext(
		ctx,
		mq.exchange,
		routingKey,
		false,
		false,
		msg,
	)
}

// Consume consumes messages from queue and passes deliveries to provided handler function.
// At most prefetch messages are delivered before being acknowledged.
// It returns channel with errors from handler function and consuming process.
// Function works asynchronously, it consumes messages in background as long as context is not closed.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, prefetch int, handler HandlerFunc) (<-chan error, error) {
	if err := mq.channel.Qos(prefetch, 0, false); err != nil {
		return nil, fmt.Errorf("can't set prefetch count: %w", err)
	}

	consumerID, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("can't create consumer ID: %w", err)
	}

	deliveries, err := mq.channel.Consume(
		queue,
		consumerID.String(),
		false, // auto acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming: %w", err)
	}

	consumingErrors := make(chan error)
	mq.isRunning = make(chan struct{})
	go func() {
		defer close(mq.isRunning)
		mq.consumeMessages(ctx, deliveries, consumingErrors, handler)
	}()

	go func() {
		<-ctx.Done()
		_ = mq.channel.Cancel(consumerID.String(), false)
	}()

	return consumingErrors, nil
}

func (mq *RabbitMQ) consumeMessages(
	ctx context.Context,
	deliveries <-chan amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) {
	for delivery := range deliveries {
		handleErr := handler(ctx, Message{
			ID:          delivery.MessageId,
			Body:        delivery.Body,
			Redelivered: delivery.Redelivered,
		})
		if handleErr != nil {
			if err := pushError(ctx, handleErr, consumingErrors); err != nil {
				_ = delivery.Nack(false, false)
				return
			}
		}

		if err := settle(&delivery, handleErr == nil); err != nil {
			if pushErr := pushError(ctx, err, consumingErrors); pushErr != nil {
				return
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}

// settle acknowledges handled delivery or rejects failed one without requeue.
// Failed imports are recorded on their job.
func settle(delivery *amqp.Delivery, handled bool) error {
	if handled {
		if err := delivery.Ack(false); err != nil {
			return fmt.Errorf("can't ack message %q: %w", delivery.MessageId, err)
		}
		return nil
	}

	if err := delivery.Nack(false, false); err != nil {
		return fmt.Errorf("can't nack message %q: %w", delivery.MessageId, err)
	}
	return nil
}

// Done returns channel which will be closed when consuming will be finished.
func (mq *RabbitMQ) Done() chan struct{} {
	return mq.isRunning
}

// Close closes the channel.
func (mq *RabbitMQ) Close() error {
	return mq.channel.Close()
}

func pushError(ctx context.Context, err error, errChan chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errChan <- err:
	}
	return nil
}
