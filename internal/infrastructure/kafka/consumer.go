package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/honeynil/headless-broker/internal/infrastructure/observability"
	"github.com/honeynil/headless-broker/internal/models"
	"github.com/segmentio/kafka-go"
)

// EventHandler reacts to a decoded content event.
type EventHandler interface {
	HandleContentEvent(ctx context.Context, event models.ContentEvent) error
}

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Consumer struct {
	reader  messageReader
	topic   string
	handler EventHandler
}

func NewConsumer(brokers []string, topic, groupID string, handler EventHandler) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 10e3,
			MaxBytes: 10e6,
		}),
		topic:   topic,
		handler: handler,
	}
}

// Consume blocks until ctx is cancelled. Undecodable messages and handler failures are
// logged and skipped.
func (c *Consumer) Consume(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				slog.Info("Kafka consumer stopped", "topic", c.topic)
				return
			}
			slog.Error("failed to read Kafka message", "topic", c.topic, "error", err)
			continue
		}

		slog.Debug("Kafka message received", "topic", msg.Topic, "key", string(msg.Key), "offset", msg.Offset)

		event, err := decodeEvent(msg.Value)
		if err != nil {
			slog.Error("failed to decode content event", "topic", msg.Topic, "offset", msg.Offset, "error", err)
			continue
		}

		if err := c.handler.HandleContentEvent(ctx, event); err != nil {
			observability.WithContext(ctx).Error("failed to handle content event", "kind", event.Kind, "post_id", event.PostID, "taxonomy", event.Taxonomy, "error", err)
			continue
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

func decodeEvent(value []byte) (models.ContentEvent, error) {
	var event models.ContentEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return event, fmt.Errorf("failed to unmarshal content event: %w", err)
	}
	if event.Kind == "" {
		return event, fmt.Errorf("content event without kind")
	}
	return event, nil
}
