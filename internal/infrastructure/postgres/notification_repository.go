package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const notificationColumns = `id, title, message, type, category, priority, is_read, user_id, created_at, updated_at`

// priorityOrder HIGH > NORMAL > LOW (el texto no ordena así).
const priorityOrder = `CASE priority WHEN 'HIGH' THEN 2 WHEN 'NORMAL' THEN 1 ELSE 0 END`

// NotificationRepo notificaciones sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.Category, &n.Priority, &n.IsRead,
		&n.UserID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, title, message, type, category, priority, is_read, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.Title, n.Message, n.Type, n.Category, n.Priority, n.IsRead, n.UserID, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func visibleFilter(f repository.NotificationFilter) *whereBuilder {
	w := &whereBuilder{}
	w.add("(user_id IS NULL OR user_id = ?)", f.UserID)
	if f.UnreadOnly {
		w.conds = append(w.conds, "is_read = FALSE")
	}
	return w
}

// List notificaciones globales y propias, por prioridad y fecha descendente.
func (r *NotificationRepo) List(ctx context.Context, f repository.NotificationFilter) ([]*entity.Notification, int, error) {
	w := visibleFilter(f)
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	query := `SELECT ` + notificationColumns + ` FROM notifications` + w.sql() +
		` ORDER BY ` + priorityOrder + ` DESC, created_at DESC` + w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, n)
	}
	return list, total, rows.Err()
}

// MarkRead marca una notificación como leída.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) (*entity.Notification, error) {
	n, err := scanNotification(r.q.QueryRow(ctx,
		`UPDATE notifications SET is_read = TRUE, updated_at = now() WHERE id = $1 RETURNING `+notificationColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return n, nil
}

// MarkAllRead marca como leídas todas las visibles para userID.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE, updated_at = now()
		 WHERE is_read = FALSE AND (user_id IS NULL OR user_id = $1)`, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}
