package dto

import "github.com/ninjasaskeh/vr46/internal/domain/entity"

// NotificationFilterRequest query de GET /api/notifications.
type NotificationFilterRequest struct {
	PageRequest
	UnreadOnly bool `query:"unreadOnly"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Type      string  `json:"type"`
	Category  string  `json:"category"`
	Priority  string  `json:"priority"`
	IsRead    bool    `json:"isRead"`
	UserID    *string `json:"userId"`
	CreatedAt string  `json:"createdAt"`
}

// NotificationFromEntity mapea entidad → respuesta.
func NotificationFromEntity(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Category:  n.Category,
		Priority:  string(n.Priority),
		IsRead:    n.IsRead,
		UserID:    n.UserID,
		CreatedAt: ISOTime(n.CreatedAt),
	}
}

// MarkAllReadResponse resultado de marcar todas como leídas.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
