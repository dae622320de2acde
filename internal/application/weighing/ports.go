// Package weighing contiene el flujo de ingesta de lecturas de báscula IoT:
// validar → conciliar → registrar → ajustar stock → emitir alertas.
package weighing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// La implementación PostgreSQL hace Commit si fn retorna nil y Rollback en caso contrario.
type TxRunner interface {
	RunWeighing(ctx context.Context, fn func(
		records repository.WeightRecordRepository,
		materials repository.MaterialRepository,
	) error) error
}

// EventPublisher publica eventos de dominio después del commit (Kafka o no-op).
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Recorder recibe métricas del flujo (Prometheus o no-op).
type Recorder interface {
	IngestionResult(result string)
	NetWeight(net decimal.Decimal)
	LowStockAlert()
}

// Resultados registrados por Recorder.IngestionResult.
const (
	ResultOK            = "ok"
	ResultInvalid       = "invalid"
	ResultNotFound      = "not_found"
	ResultForbidden     = "forbidden"
	ResultInvalidWeight = "invalid_weight"
	ResultError         = "error"
)

// Eventos publicados tras el commit.
const (
	EventWeighingCompleted = "weighing.completed"
	EventMaterialLowStock  = "material.low_stock"
)

// WeighingCompletedEvent se publica por cada registro COMPLETED.
type WeighingCompletedEvent struct {
	Type          string          `json:"type"`
	RecordID      string          `json:"recordId"`
	MaterialID    string          `json:"materialId"`
	OperatorID    string          `json:"operatorId"`
	NetWeight     decimal.Decimal `json:"netWeight"`
	VehicleNumber string          `json:"vehicleNumber"`
	Timestamp     string          `json:"timestamp"`
}

// LowStockEvent se publica cuando el stock cae bajo el umbral.
type LowStockEvent struct {
	Type       string          `json:"type"`
	MaterialID string          `json:"materialId"`
	Remaining  decimal.Decimal `json:"remaining"`
	Unit       string          `json:"unit"`
	Status     string          `json:"status"`
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, any) error { return nil }

// NoopPublisher descarta los eventos.
func NoopPublisher() EventPublisher { return noopPublisher{} }

type noopRecorder struct{}

func (noopRecorder) IngestionResult(string)   {}
func (noopRecorder) NetWeight(decimal.Decimal) {}
func (noopRecorder) LowStockAlert()            {}

// NoopRecorder descarta las métricas.
func NoopRecorder() Recorder { return noopRecorder{} }
