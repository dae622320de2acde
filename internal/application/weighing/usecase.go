package weighing

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// Deps dependencias del caso de uso de pesaje.
type Deps struct {
	Tx            TxRunner
	Materials     repository.MaterialRepository
	Users         repository.UserRepository
	Records       repository.WeightRecordRepository
	Notifications repository.NotificationRepository
	Events        EventPublisher // opcional; no-op si es nil
	Metrics       Recorder       // opcional; no-op si es nil
	Log           zerolog.Logger
}

// UseCase orquesta la ingesta IoT y el ciclo de vida de los registros manuales.
type UseCase struct {
	tx        TxRunner
	materials repository.MaterialRepository
	users     repository.UserRepository
	records   repository.WeightRecordRepository
	alerts    *AlertEmitter
	events    EventPublisher
	metrics   Recorder
	log       zerolog.Logger
	now       func() time.Time
	newID     func() string
}

// NewUseCase construye el caso de uso.
func NewUseCase(d Deps) *UseCase {
	if d.Events == nil {
		d.Events = NoopPublisher()
	}
	if d.Metrics == nil {
		d.Metrics = NoopRecorder()
	}
	return &UseCase{
		tx:        d.Tx,
		materials: d.Materials,
		users:     d.Users,
		records:   d.Records,
		alerts:    NewAlertEmitter(d.Notifications, d.Metrics, d.Log),
		events:    d.Events,
		metrics:   d.Metrics,
		log:       d.Log,
		now:       time.Now,
		newID:     newRecordID,
	}
}

// afterCommit efectos posteriores al commit: notificaciones y eventos. Nunca falla.
func (uc *UseCase) afterCommit(ctx context.Context, material *entity.Material, record *entity.WeightRecord, adj StockAdjustment) {
	uc.alerts.Emit(ctx, material, record.NetWeight, adj)

	completed := WeighingCompletedEvent{
		Type:          EventWeighingCompleted,
		RecordID:      record.ID,
		MaterialID:    record.MaterialID,
		OperatorID:    record.OperatorID,
		NetWeight:     record.NetWeight,
		VehicleNumber: record.VehicleNumber,
		Timestamp:     record.Timestamp().UTC().Format(time.RFC3339Nano),
	}
	if err := uc.events.Publish(ctx, record.MaterialID, completed); err != nil {
		uc.log.Warn().Err(err).Str("record_id", record.ID).Msg("no se pudo publicar evento de pesaje")
	}
	if adj.LowStock {
		low := LowStockEvent{
			Type:       EventMaterialLowStock,
			MaterialID: material.ID,
			Remaining:  adj.Remaining,
			Unit:       material.Unit,
			Status:     string(adj.Status),
		}
		if err := uc.events.Publish(ctx, material.ID, low); err != nil {
			uc.log.Warn().Err(err).Str("material_id", material.ID).Msg("no se pudo publicar evento de stock bajo")
		}
	}
}
