package repository

import (
	"context"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// NotificationFilter alcance del listado: globales (user_id NULL) más las de UserID.
type NotificationFilter struct {
	UserID     string
	UnreadOnly bool
	Limit      int
	Offset     int
}

// NotificationRepository define el puerto de persistencia para Notification (DIP).
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	// List ordena por prioridad descendente y luego por fecha de creación descendente.
	List(ctx context.Context, f NotificationFilter) ([]*entity.Notification, int, error)
	// MarkRead marca una notificación como leída; (nil, nil) si no existe.
	MarkRead(ctx context.Context, id string) (*entity.Notification, error)
	// MarkAllRead marca como leídas las visibles para userID y devuelve cuántas cambiaron.
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
