package repository

import (
	"context"
	"time"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// WeightRecordFilter filtros del libro de pesajes. Campos vacíos no filtran.
type WeightRecordFilter struct {
	Status     entity.WeightStatus
	MaterialID string
	OperatorID string
	From       *time.Time
	To         *time.Time
	Limit      int // 0 = sin límite (exportación)
	Offset     int
}

// WeightRecordRepository define el puerto de persistencia del libro de pesajes.
// Las lecturas rellenan MaterialName, MaterialUnit y OperatorName.
type WeightRecordRepository interface {
	Create(ctx context.Context, r *entity.WeightRecord) error
	GetByID(ctx context.Context, id string) (*entity.WeightRecord, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.WeightRecord, error)
	UpdateStatus(ctx context.Context, r *entity.WeightRecord) error
	List(ctx context.Context, f WeightRecordFilter) ([]*entity.WeightRecord, int, error)
	// ListRecent devuelve los últimos limit registros por fecha de creación descendente.
	ListRecent(ctx context.Context, limit int) ([]*entity.WeightRecord, error)
}
