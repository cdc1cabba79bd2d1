package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/honeynil/headless-broker/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaProducer publishes content events. Events for the same term or post share a partition.
type KafkaProducer interface {
	Publish(ctx context.Context, topic string, event models.ContentEvent) error
	Close() error
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, topic string, event models.ContentEvent) error {
	msg, err := buildMessage(topic, event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.Error("failed to publish content event", "topic", topic, "kind", event.Kind, "key", string(msg.Key), "error", err)
		return err
	}
	slog.Debug("content event published", "topic", topic, "kind", event.Kind, "key", string(msg.Key))
	return nil
}

func buildMessage(topic string, event models.ContentEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode %s event: %w", event.Kind, err)
	}
	return kafka.Message{
		Topic: topic,
		Key:   []byte(event.PartitionKey()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
		},
	}, nil
}

func (p *Producer) Close() error {
	if err := p.writer.Close(); err != nil {
		slog.Error("failed to close Kafka writer", "error", err)
		return err
	}
	slog.Info("Kafka writer closed")
	return nil
}
