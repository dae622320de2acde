package kafka

import (
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/ninjasaskeh/vr46/internal/application/weighing"
)

func TestEventHeaders_CopiaTipo(t *testing.T) {
	h := eventHeaders([]byte(`{"type":"weighing.completed","recordId":"r-1"}`))
	assert.Equal(t, []kafka.Header{{Key: "event-type", Value: []byte("weighing.completed")}}, h)

	assert.Nil(t, eventHeaders([]byte(`{"recordId":"r-1"}`)))
	assert.Nil(t, eventHeaders([]byte(`no-json`)))
}

func TestToMessage_LeeCabecera(t *testing.T) {
	m := toMessage(kafka.Message{
		Key: []byte("m-1"), Value: []byte("{}"), Partition: 2, Offset: 42,
		Headers: []kafka.Header{{Key: "event-type", Value: []byte(weighing.EventMaterialLowStock)}},
	})
	assert.Equal(t, Message{Key: "m-1", EventType: "material.low_stock", Value: []byte("{}"), Partition: 2, Offset: 42}, m)
}

func TestNewProducer_ConfiguraWriter(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "vr46.weighing")
	defer p.Close()
	assert.Equal(t, "vr46.weighing", p.writer.Topic)
}
