// Package kafka publica y consume los eventos de pesaje con segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ninjasaskeh/vr46/internal/application/weighing"
)

var _ weighing.EventPublisher = (*Producer)(nil)

// Producer implementa weighing.EventPublisher sobre un kafka.Writer.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer crea el writer; la conexión es perezosa (primer WriteMessages).
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: writer}
}

// Publish serializa event en JSON y lo escribe con la clave dada.
func (p *Producer) Publish(ctx context.Context, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   data,
		Time:    time.Now(),
		Headers: eventHeaders(data),
	})
}

// Close vacía el buffer y cierra el writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}

// eventHeaders copia el campo "type" del evento a la cabecera event-type.
func eventHeaders(data []byte) []kafka.Header {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil || probe.Type == "" {
		return nil
	}
	return []kafka.Header{{Key: "event-type", Value: []byte(probe.Type)}}
}
