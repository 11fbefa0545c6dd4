// Package stream mirrors stored readings to a Kafka topic for downstream
// consumers. The mirror is best-effort: the live websocket fan-out, not
// Kafka, is what viewers depend on.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"emonitor-backend/internal/db"
)

var (
	ErrEncodeMessage = errors.New("error encoding message")
	ErrWriteMessage  = errors.New("error writing message")
)

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers []string
	Topic   string
}

type Publisher struct {
	writer Writer
}

func New(cfg Config) *Publisher {
	return &Publisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers: cfg.Brokers,
			Topic:   cfg.Topic,
		}),
	}
}

// Publish writes one stored reading to the topic, keyed by its timestamp.
func (p *Publisher) Publish(ctx context.Context, r db.SensorReading) error {
	const fn = "Publisher:Publish"
	value, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrEncodeMessage, err)
	}
	msg := kafka.Message{
		Key:   []byte(r.Timestamp.UTC().Format(time.RFC3339Nano)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	return nil
}

func (p *Publisher) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing stream publisher...")
	p.writer.Close()
}
