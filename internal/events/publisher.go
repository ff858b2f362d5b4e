package events

import (
	"context"
	"fmt"

	"stylique/internal/config"
	"stylique/internal/model"

	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Header values attached to every order record.
const (
	HeaderEventType     = "event-type"
	HeaderSchemaVersion = "schema-version"
	EventOrderPlaced    = "OrderPlaced"
)

// Publisher publishes order lifecycle events.
type Publisher interface {
	// PublishOrderPlaced publishes an OrderPlaced event for a stored order.
	PublishOrderPlaced(ctx context.Context, order model.Order) error

	// Close flushes and releases the underlying transport.
	Close()
}

// ProducerClient is the subset of *kgo.Client used for publishing.
type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// NopPublisher discards events. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, model.Order) error { return nil }
func (NopPublisher) Close()                                                {}

type kafkaPublisher struct {
	cl     ProducerClient
	topic  string
	logger zerolog.Logger
}

// NewPublisher returns a Kafka publisher when brokers are configured and a
// NopPublisher otherwise.
func NewPublisher(ctx context.Context, cfg config.KafkaConfig, logger zerolog.Logger) (Publisher, error) {
	if !cfg.Enabled() {
		logger.Info().Msg("kafka brokers not configured, order events disabled")
		return NopPublisher{}, nil
	}

	cl, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.OrderTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}

	if err := cl.Ping(ctx); err != nil {
		cl.Close()
		return nil, fmt.Errorf("failed to ping kafka: %w", err)
	}

	logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.OrderTopic).
		Msg("kafka order publisher ready")

	return newKafkaPublisher(cl, cfg.OrderTopic, logger), nil
}

func newKafkaPublisher(cl ProducerClient, topic string, logger zerolog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		cl:     cl,
		topic:  topic,
		logger: logger.With().Str("publisher", "kafka").Logger(),
	}
}

// PublishOrderPlaced encodes the order and produces it synchronously. Records
// are keyed by email so a customer's orders stay on one partition.
func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, order model.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := EncodeOrderPlaced(order)
	if err != nil {
		return fmt.Errorf("failed to encode order event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(order.Email),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: HeaderEventType, Value: []byte(EventOrderPlaced)},
			{Key: HeaderSchemaVersion, Value: []byte("1")},
		},
	}

	if err := p.cl.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("failed to produce order event: %w", err)
	}

	p.logger.Debug().
		Str("order_id", order.ID).
		Str("topic", p.topic).
		Msg("order event published")

	return nil
}

func (p *kafkaPublisher) Close() {
	p.logger.Info().Msg("closing kafka publisher")
	p.cl.Close()
}
