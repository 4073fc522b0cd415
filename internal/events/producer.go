package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
)

// KafkaProducer publishes roster events to a single topic, creating the
// writer on first use.
type KafkaProducer struct {
	brokers []string
	topic   string

	mu     sync.Mutex
	writer *kafka.Writer
}

// NewKafkaProducer creates a KafkaProducer for the given brokers and topic.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	return &KafkaProducer{brokers: brokers, topic: topic}
}

// Publish serialises the event and writes it keyed by activity name, so
// consumers see changes to one roster in order.
func (p *KafkaProducer) Publish(ctx context.Context, event RosterChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.Activity),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("roster." + event.Action)},
		},
	}
	return p.getWriter().WriteMessages(ctx, msg)
}

func (p *KafkaProducer) getWriter() *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		p.writer = &kafka.Writer{
			Addr:         kafka.TCP(p.brokers...),
			Topic:        p.topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		}
	}
	return p.writer
}

// Close releases the underlying writer.
func (p *KafkaProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}
