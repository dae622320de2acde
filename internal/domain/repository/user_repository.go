package repository

import (
	"context"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// UserFilter filtros del listado de usuarios.
type UserFilter struct {
	Role   entity.Role // vacío = todos
	Limit  int
	Offset int
}

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID y GetByEmail devuelven (nil, nil) cuando no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, f UserFilter) ([]*entity.User, int, error)
}
