package entity

import "time"

// NotificationType tipo visual de la notificación.
type NotificationType string

const (
	NotificationInfo    NotificationType = "INFO"
	NotificationWarning NotificationType = "WARNING"
	NotificationError   NotificationType = "ERROR"
	NotificationSuccess NotificationType = "SUCCESS"
)

// NotificationPriority prioridad; se ordena HIGH > NORMAL > LOW.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "LOW"
	PriorityNormal NotificationPriority = "NORMAL"
	PriorityHigh   NotificationPriority = "HIGH"
)

// Categorías usadas por el flujo de pesaje.
const (
	CategoryInventory  = "Inventory"
	CategoryOperations = "Operations"
)

// Notification mensaje para el dashboard. UserID nil = global.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      NotificationType
	Category  string
	Priority  NotificationPriority
	IsRead    bool
	UserID    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
