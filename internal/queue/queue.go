package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/config"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/types"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	reconnectAttempts = 3
	reconnectDelay    = 500 * time.Millisecond
)

//go:generate mockery --name=Publisher --output=../../tests/mocks --outpkg=mocks --filename=mock_publisher.go

// Publisher emits ledger events after their operation committed.
type Publisher interface {
	Publish(ctx context.Context, event *types.LedgerEvent) error
	Shutdown()
}

// QueueManager publishes ledger events to a RabbitMQ topic exchange, using
// the event type as routing key.
type QueueManager struct {
	cfg    *config.QueueConfig
	logger *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig, logger *zap.Logger) (*QueueManager, error) {
	qm := &QueueManager{
		cfg:    cfg,
		logger: logger,
	}
	if err := qm.connect(); err != nil {
		return nil, err
	}
	return qm, nil
}

func (qm *QueueManager) dialURL() string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(qm.cfg.QueueUser, qm.cfg.QueuePassword),
		Host:   qm.cfg.Url,
	}
	return u.String()
}

// connect must be called with mu held or before the manager is shared.
func (qm *QueueManager) connect() error {
	conn, err := amqp.Dial(qm.dialURL())
	if err != nil {
		return fmt.Errorf("failed to connect to queue at %s: %w", qm.cfg.Url, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open queue channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		qm.cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to declare exchange %s: %w", qm.cfg.Exchange, err)
	}

	qm.conn = conn
	qm.ch = ch
	qm.logger.Info("connected to queue", zap.String("exchange", qm.cfg.Exchange))
	return nil
}

func (qm *QueueManager) Publish(ctx context.Context, event *types.LedgerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    time.Now(),
		Type:         event.Type.String(),
		Body:         body,
	}

	qm.mu.Lock()
	defer qm.mu.Unlock()

	return retry.Do(
		func() error {
			if qm.ch == nil || qm.ch.IsClosed() {
				if err := qm.connect(); err != nil {
					return err
				}
			}
			return qm.ch.PublishWithContext(ctx, qm.cfg.Exchange, event.Type.String(), false, false, msg)
		},
		retry.Context(ctx),
		retry.Attempts(reconnectAttempts),
		retry.Delay(reconnectDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			qm.logger.Warn("failed to publish event, retrying",
				zap.Uint("attempt", n+1),
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
			qm.closeLocked()
		}),
	)
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	qm.mu.Lock()
	defer qm.mu.Unlock()

	qm.logger.Info("shutting down queue manager")
	qm.closeLocked()
}

func (qm *QueueManager) closeLocked() {
	if qm.ch != nil {
		if err := qm.ch.Close(); err != nil {
			qm.logger.Debug("failed to close queue channel", zap.Error(err))
		}
		qm.ch = nil
	}
	if qm.conn != nil {
		if err := qm.conn.Close(); err != nil {
			qm.logger.Debug("failed to close queue connection", zap.Error(err))
		}
		qm.conn = nil
	}
}

// NopPublisher drops every event, used when no queue is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *types.LedgerEvent) error { return nil }

func (NopPublisher) Shutdown() {}
