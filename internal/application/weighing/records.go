package weighing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

// Recent devuelve los últimos registros (más recientes primero). Solo lectura.
func (uc *UseCase) Recent(ctx context.Context, limit int) ([]*entity.WeightRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	list, err := uc.records.ListRecent(ctx, limit)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list recent weight records", Err: err}
	}
	return list, nil
}

// ManualInput registro manual desde el dashboard. OperatorID es el usuario autenticado.
type ManualInput struct {
	MaterialID    string
	VehicleNumber string
	GrossWeight   decimal.Decimal
	TareWeight    decimal.Decimal
	OperatorID    string
}

// CreateManual crea un registro PENDING sin tocar el stock; el stock se descuenta al
// completarlo con UpdateStatus.
func (uc *UseCase) CreateManual(ctx context.Context, in ManualInput) (*entity.WeightRecord, error) {
	verr := &domain.ValidationError{}
	if in.MaterialID == "" {
		verr.Add("materialId", "Material ID is required")
	}
	if in.VehicleNumber == "" {
		verr.Add("vehicleNumber", "Vehicle number is required")
	}
	checkWeight("grossWeight", "Gross weight must be positive", in.GrossWeight, verr)
	checkWeight("tareWeight", "Tare weight must be positive", in.TareWeight, verr)
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	material, err := uc.materials.GetByID(ctx, in.MaterialID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get material", Err: err}
	}
	if material == nil {
		return nil, &domain.NotFoundError{Entity: domain.EntityMaterial, ID: in.MaterialID}
	}
	operator, err := uc.users.GetByID(ctx, in.OperatorID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get operator", Err: err}
	}
	if operator == nil {
		return nil, &domain.NotFoundError{Entity: domain.EntityOperator, ID: in.OperatorID}
	}
	if !in.GrossWeight.Sub(in.TareWeight).IsPositive() {
		return nil, domain.ErrInvalidWeight
	}

	record, err := entity.NewWeightRecord(uc.newID(), material.ID, operator.ID, in.VehicleNumber,
		in.GrossWeight, in.TareWeight, entity.WeightPending, nil, uc.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("construir registro de pesaje: %w", err)
	}
	if err := uc.records.Create(ctx, record); err != nil {
		return nil, &domain.PersistenceError{Op: "create weight record", Err: err}
	}
	record.MaterialName = material.Name
	record.MaterialUnit = material.Unit
	record.OperatorName = operator.Name

	uc.log.Info().Str("record_id", record.ID).Str("material_id", material.ID).Msg("registro manual creado")
	return record, nil
}

// UpdateStatus aplica la tabla de transiciones a un registro. Un OPERATOR sólo puede
// modificar sus propios registros. IN_PROGRESS → COMPLETED descuenta stock en la misma
// transacción y emite las mismas alertas que la ingesta.
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, next entity.WeightStatus,
	userID string, role entity.Role) (*entity.WeightRecord, error) {
	var (
		record   *entity.WeightRecord
		material *entity.Material
		adj      StockAdjustment
	)
	now := uc.now().UTC()

	err := uc.tx.RunWeighing(ctx, func(records repository.WeightRecordRepository, materials repository.MaterialRepository) error {
		rec, err := records.GetForUpdate(ctx, id)
		if err != nil {
			return &domain.PersistenceError{Op: "get weight record", Err: err}
		}
		if rec == nil {
			return &domain.NotFoundError{Entity: domain.EntityWeightRecord, ID: id}
		}
		if role == entity.RoleOperator && rec.OperatorID != userID {
			return domain.ErrForbidden
		}
		if err := rec.TransitionTo(next, now); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidTransition, err)
		}
		if err := records.UpdateStatus(ctx, rec); err != nil {
			return &domain.PersistenceError{Op: "update weight record status", Err: err}
		}

		if next == entity.WeightCompleted {
			m, err := materials.GetByID(ctx, rec.MaterialID)
			if err != nil {
				return &domain.PersistenceError{Op: "get material", Err: err}
			}
			if m == nil {
				return &domain.NotFoundError{Entity: domain.EntityMaterial, ID: rec.MaterialID}
			}
			a, err := AdjustStock(ctx, materials, m.ID, rec.NetWeight)
			if err != nil {
				return err
			}
			material, adj = m, a
		}
		record = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	if record.Status == entity.WeightCompleted {
		uc.afterCommit(ctx, material, record, adj)
		uc.metrics.NetWeight(record.NetWeight)
	}
	uc.log.Info().Str("record_id", record.ID).Str("status", string(record.Status)).Msg("estado de pesaje actualizado")
	return record, nil
}
