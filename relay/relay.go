// Package relay publishes cart events to a RabbitMQ queue.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	cart "github.com/Ramakant55/Trendora-Boutique/cart/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
)

// DefaultQueue is the queue cart events are published to.
const DefaultQueue = "cart-events"

// DefaultBuffer is how many changes may wait for publishing by default.
const DefaultBuffer = 256

// Channel is the subset of *amqp.Channel the relay uses.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Message is the JSON body of a published cart event.
type Message struct {
	SessionID  string       `json:"session_id"`
	CartRoot   string       `json:"cart_root"`
	Sequence   uint32       `json:"sequence"`
	EventType  string       `json:"event_type"`
	Event      common.Event `json:"event"`
	Count      int          `json:"count"`
	TotalCents int64        `json:"total_cents"`
	CreatedAt  string       `json:"created_at,omitempty"`
}

// NewMessage converts a cart change into a relay message.
func NewMessage(change cart.Change) Message {
	msg := Message{
		SessionID:  change.Session.String(),
		CartRoot:   change.Root.String(),
		Sequence:   change.Page.Sequence,
		Event:      change.Page.Event,
		Count:      change.Snapshot.Count,
		TotalCents: change.Snapshot.Total.Cents(),
	}
	if change.Page.Event != nil {
		msg.EventType = change.Page.Event.EventType()
	}
	if change.Page.CreatedAt != nil {
		msg.CreatedAt = change.Page.CreatedAt.AsTime().Format(time.RFC3339Nano)
	}
	return msg
}

// Publisher fans cart changes out to RabbitMQ. Handle never blocks the
// cart: changes are buffered and published by Run.
type Publisher struct {
	ch      Channel
	queue   string
	logger  *zap.Logger
	pending chan Message
	timeout time.Duration
	closers []func() error
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithBuffer sets how many changes may wait for publishing. Non-positive
// sizes keep the default.
func WithBuffer(n int) Option {
	return func(p *Publisher) {
		if n > 0 {
			p.pending = make(chan Message, n)
		}
	}
}

// WithPublishTimeout bounds each publish call.
func WithPublishTimeout(d time.Duration) Option {
	return func(p *Publisher) { p.timeout = d }
}

// New declares the durable queue on ch and returns a Publisher.
func New(ch Channel, queue string, logger *zap.Logger, opts ...Option) (*Publisher, error) {
	if queue == "" {
		queue = DefaultQueue
	}
	q, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	p := &Publisher{
		ch:      ch,
		queue:   q.Name,
		logger:  logger,
		pending: make(chan Message, DefaultBuffer),
		timeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Dial connects to the broker at url and returns a Publisher on a new channel.
func Dial(url, queue string, logger *zap.Logger, opts ...Option) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	p, err := New(ch, queue, logger, opts...)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	p.closers = append(p.closers, conn.Close)
	return p, nil
}

// Queue is the declared queue name.
func (p *Publisher) Queue() string {
	return p.queue
}

// Handle queues a cart change for publishing. When the buffer is full the
// change is dropped and logged.
func (p *Publisher) Handle(change cart.Change) {
	msg := NewMessage(change)
	select {
	case p.pending <- msg:
	default:
		p.logger.Warn("relay buffer full, dropping cart event",
			zap.String("session", msg.SessionID),
			zap.Uint32("sequence", msg.Sequence),
			zap.String("event_type", msg.EventType))
	}
}

// Run publishes queued changes until ctx is cancelled, then flushes what is
// already buffered.
func (p *Publisher) Run(ctx context.Context) error {
	for {
		select {
		case msg := <-p.pending:
			p.publish(ctx, msg)
		case <-ctx.Done():
			p.flush()
			return nil
		}
	}
}

func (p *Publisher) flush() {
	for {
		select {
		case msg := <-p.pending:
			p.publish(context.Background(), msg)
		default:
			return
		}
	}
}

func (p *Publisher) publish(ctx context.Context, msg Message) {
	body, err := json.Marshal(msg)
	if err != nil {
		p.logger.Error("failed to marshal cart event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         msg.EventType,
			MessageId:    fmt.Sprintf("%s-%d", msg.CartRoot, msg.Sequence),
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("failed to publish cart event",
			zap.String("queue", p.queue),
			zap.String("session", msg.SessionID),
			zap.Uint32("sequence", msg.Sequence),
			zap.Error(err))
		return
	}
	p.logger.Debug("published cart event",
		zap.String("queue", p.queue),
		zap.String("event_type", msg.EventType))
}

// Close closes the channel and, for dialed publishers, the connection.
func (p *Publisher) Close() error {
	err := p.ch.Close()
	for _, closeFn := range p.closers {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
