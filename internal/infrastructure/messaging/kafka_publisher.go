// Package messaging publishes shipment notifications to downstream consumers.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

const (
	headerType   = "event-type"
	batchTimeout = 50 * time.Millisecond
)

// Config captures the settings for the Kafka publisher.
type Config struct {
	Brokers []string
	Topic   string
}

// KafkaPublisher writes notifications asynchronously. Messages are keyed by
// shipment ID so each shipment's notifications land on one partition in order.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    zerolog.Logger
}

func NewKafkaPublisher(cfg Config, log zerolog.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("no kafka topic configured")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           batchTimeout,
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error().Err(err).Int("messages", len(messages)).Msg("kafka delivery failed")
			}
		},
	}
	return &KafkaPublisher{writer: w, log: log}, nil
}

// Publish enqueues n on the writer. With an async writer the returned error
// only covers encoding and local buffering.
func (p *KafkaPublisher) Publish(ctx context.Context, n domain.ShipmentNotification) error {
	msg, err := toMessage(n)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	return nil
}

// Close flushes pending messages.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(n domain.ShipmentNotification) (kafka.Message, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode notification: %w", err)
	}
	return kafka.Message{
		Key:   []byte(n.ShipmentID),
		Value: payload,
		Time:  n.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerType, Value: []byte(n.Type)},
		},
	}, nil
}

// NoopPublisher discards notifications. It is used when no brokers are set.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.ShipmentNotification) error { return nil }

func (NoopPublisher) Close() error { return nil }
