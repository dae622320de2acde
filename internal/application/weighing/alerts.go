package weighing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// AlertEmitter crea las notificaciones del flujo de pesaje. Es best-effort: los fallos se
// registran en el log y nunca se propagan al llamador.
type AlertEmitter struct {
	notifications repository.NotificationRepository
	metrics       Recorder
	log           zerolog.Logger
	now           func() time.Time
}

// NewAlertEmitter construye el emisor.
func NewAlertEmitter(notifications repository.NotificationRepository, metrics Recorder, log zerolog.Logger) *AlertEmitter {
	if metrics == nil {
		metrics = NoopRecorder()
	}
	return &AlertEmitter{notifications: notifications, metrics: metrics, log: log, now: time.Now}
}

// Emit crea la alerta de stock bajo (si adj.LowStock) y siempre la notificación de éxito.
func (e *AlertEmitter) Emit(ctx context.Context, material *entity.Material, net decimal.Decimal, adj StockAdjustment) {
	if adj.LowStock {
		e.metrics.LowStockAlert()
		e.create(ctx, &entity.Notification{
			Title:    "Low Stock Alert",
			Message:  fmt.Sprintf("%s inventory is running low (%s %s remaining)", material.Name, adj.Remaining.String(), material.Unit),
			Type:     entity.NotificationWarning,
			Category: entity.CategoryInventory,
			Priority: entity.PriorityHigh,
		})
	}
	e.create(ctx, &entity.Notification{
		Title:    "Weight Record Completed",
		Message:  fmt.Sprintf("Weight record for %s has been successfully processed (%s kg)", material.Name, net.String()),
		Type:     entity.NotificationSuccess,
		Category: entity.CategoryOperations,
		Priority: entity.PriorityNormal,
	})
}

func (e *AlertEmitter) create(ctx context.Context, n *entity.Notification) {
	now := e.now()
	n.ID = uuid.New().String()
	n.IsRead = false
	n.CreatedAt = now
	n.UpdatedAt = now
	if err := e.notifications.Create(ctx, n); err != nil {
		e.log.Warn().Err(err).
			Str("title", n.Title).
			Str("type", string(n.Type)).
			Msg("no se pudo crear la notificación")
	}
}
