package usecase

import (
	"context"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// NotificationUseCase lectura y marcado de notificaciones del dashboard.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List notificaciones globales y del usuario.
func (uc *NotificationUseCase) List(ctx context.Context, userID string, in dto.NotificationFilterRequest) ([]dto.NotificationResponse, dto.Pagination, error) {
	in.DefaultPage()
	list, total, err := uc.repo.List(ctx, repository.NotificationFilter{
		UserID:     userID,
		UnreadOnly: in.UnreadOnly,
		Limit:      in.Limit,
		Offset:     in.Offset(),
	})
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationFromEntity(n))
	}
	return out, dto.NewPagination(in.PageRequest, total), nil
}

// MarkRead marca una notificación como leída.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) (*dto.NotificationResponse, error) {
	n, err := uc.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &domain.NotFoundError{Entity: domain.EntityNotification, ID: id}
	}
	out := dto.NotificationFromEntity(n)
	return &out, nil
}

// MarkAllRead marca como leídas todas las visibles para el usuario.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (*dto.MarkAllReadResponse, error) {
	n, err := uc.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MarkAllReadResponse{Updated: n}, nil
}
