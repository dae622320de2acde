package weighing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// IngestResult datos devueltos al dispositivo tras una ingesta exitosa.
type IngestResult struct {
	ID        string
	NetWeight decimal.Decimal
	Material  string
	Operator  string
	Timestamp time.Time

	RemainingStock decimal.Decimal
	LowStock       bool
}

func newRecordID() string { return uuid.New().String() }

// Ingest procesa una lectura de báscula:
//  1. Validación estructural (sin store).
//  2. Conciliación: material, luego operador, luego rol.
//  3. Peso neto positivo, antes de cualquier escritura.
//  4. En una transacción: registro COMPLETED + descuento atómico de stock + estado.
//  5. Tras el commit: notificaciones y eventos (best-effort).
//
// Dos lecturas idénticas producen dos registros y dos descuentos.
func (uc *UseCase) Ingest(ctx context.Context, raw map[string]any) (*IngestResult, error) {
	reading, err := ValidateReading(raw)
	if err != nil {
		uc.metrics.IngestionResult(ResultInvalid)
		return nil, err
	}

	material, operator, err := uc.reconcile(ctx, reading.MaterialID, reading.OperatorID)
	if err != nil {
		uc.metrics.IngestionResult(resultFor(err))
		return nil, err
	}

	net := reading.GrossWeight.Sub(reading.TareWeight)
	if !net.IsPositive() {
		uc.metrics.IngestionResult(ResultInvalidWeight)
		return nil, domain.ErrInvalidWeight
	}

	now := uc.now().UTC()
	weighedAt := now
	if reading.Timestamp != nil {
		weighedAt = *reading.Timestamp
	}
	record, err := entity.NewWeightRecord(uc.newID(), material.ID, operator.ID, reading.VehicleNumber,
		reading.GrossWeight, reading.TareWeight, entity.WeightCompleted, &weighedAt, now)
	if err != nil {
		uc.metrics.IngestionResult(ResultError)
		return nil, fmt.Errorf("construir registro de pesaje: %w", err)
	}

	var adj StockAdjustment
	err = uc.tx.RunWeighing(ctx, func(records repository.WeightRecordRepository, materials repository.MaterialRepository) error {
		if err := records.Create(ctx, record); err != nil {
			return &domain.PersistenceError{Op: "create weight record", Err: err}
		}
		a, err := AdjustStock(ctx, materials, material.ID, net)
		if err != nil {
			return err
		}
		adj = a
		return nil
	})
	if err != nil {
		var pe *domain.PersistenceError
		if !errors.As(err, &pe) {
			err = &domain.PersistenceError{Op: "weighing transaction", Err: err}
		}
		uc.metrics.IngestionResult(ResultError)
		uc.log.Error().Err(err).
			Str("device_id", reading.DeviceID).
			Str("material_id", material.ID).
			Msg("ingesta de pesaje fallida")
		return nil, err
	}

	uc.afterCommit(ctx, material, record, adj)
	uc.metrics.IngestionResult(ResultOK)
	uc.metrics.NetWeight(net)

	uc.log.Info().
		Str("record_id", record.ID).
		Str("device_id", reading.DeviceID).
		Str("material_id", material.ID).
		Str("net_weight", net.String()).
		Str("remaining_stock", adj.Remaining.String()).
		Bool("low_stock", adj.LowStock).
		Msg("pesaje registrado")

	return &IngestResult{
		ID:             record.ID,
		NetWeight:      net,
		Material:       material.Name,
		Operator:       operator.DisplayName(),
		Timestamp:      record.Timestamp(),
		RemainingStock: adj.Remaining,
		LowStock:       adj.LowStock,
	}, nil
}

// reconcile resuelve material y operador en ese orden. Si el material no existe el
// operador no se consulta.
func (uc *UseCase) reconcile(ctx context.Context, materialID, operatorID string) (*entity.Material, *entity.User, error) {
	material, err := uc.materials.GetByID(ctx, materialID)
	if err != nil {
		return nil, nil, &domain.PersistenceError{Op: "get material", Err: err}
	}
	if material == nil {
		return nil, nil, &domain.NotFoundError{Entity: domain.EntityMaterial, ID: materialID}
	}

	operator, err := uc.users.GetByID(ctx, operatorID)
	if err != nil {
		return nil, nil, &domain.PersistenceError{Op: "get operator", Err: err}
	}
	if operator == nil {
		return nil, nil, &domain.NotFoundError{Entity: domain.EntityOperator, ID: operatorID}
	}
	if !operator.Role.CanOperateScale() {
		return nil, nil, domain.ErrNotOperator
	}
	return material, operator, nil
}

func resultFor(err error) string {
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &nf):
		return ResultNotFound
	case errors.Is(err, domain.ErrNotOperator):
		return ResultForbidden
	default:
		return ResultError
	}
}
