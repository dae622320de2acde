package kafka

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Message evento leído del tópico.
type Message struct {
	Key       string
	EventType string
	Value     []byte
	Partition int
	Offset    int64
}

// MessageHandler procesa un mensaje; un error se registra y no detiene el consumo.
type MessageHandler func(ctx context.Context, msg Message) error

// Consumer lee eventos de pesaje (usado por vr46ctl events tail).
type Consumer struct {
	reader *kafka.Reader
	log    zerolog.Logger
}

// NewConsumer crea el reader. groupID vacío lee sin grupo de consumo.
func NewConsumer(brokers []string, topic, groupID string, log zerolog.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})
	return &Consumer{reader: reader, log: log}
}

// Consume bloquea hasta que ctx se cancela.
func (c *Consumer) Consume(ctx context.Context, handler MessageHandler) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.log.Warn().Err(err).Msg("kafka: error leyendo mensaje")
				continue
			}

			if err := handler(ctx, toMessage(msg)); err != nil {
				c.log.Warn().Err(err).Str("key", string(msg.Key)).Msg("kafka: error procesando mensaje")
			}
		}
	}
}

// Close cierra el reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}

func toMessage(m kafka.Message) Message {
	out := Message{Key: string(m.Key), Value: m.Value, Partition: m.Partition, Offset: m.Offset}
	for _, h := range m.Headers {
		if h.Key == "event-type" {
			out.EventType = string(h.Value)
		}
	}
	return out
}
