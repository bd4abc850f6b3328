// Package producers publishes settlement events to Kafka. The settlement
// worker emits one event per promoted entry; events that cannot reach the
// primary topic are diverted to a dead letter topic instead of failing
// the promotion.
package producers

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessagePublisher publishes settlement events to the primary topic,
// keyed by the source entry id so copies of the same entry stay ordered
type MessagePublisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

// DeadLetterPublisher captures settlement events that could not reach the
// primary topic, preserving the original payload alongside the failure reason
type DeadLetterPublisher interface {
	PublishToDLQ(ctx context.Context, key string, originalMessageValue []byte, reason string) error
	Close() error
}

// KafkaWriter wraps kafka.Writer methods for testing
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
