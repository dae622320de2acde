package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// MaterialFilter filtros del listado de materiales. Search busca en nombre y proveedor.
type MaterialFilter struct {
	Search   string
	Category string
	Status   entity.MaterialStatus
	Limit    int
	Offset   int
}

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(ctx context.Context, m *entity.Material) error
	// GetByID devuelve (nil, nil) si el material no existe.
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	Update(ctx context.Context, m *entity.Material) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f MaterialFilter) ([]*entity.Material, int, error)
	// DecrementStock resta qty del stock en una única operación atómica y devuelve el stock
	// resultante. Nunca lee-modifica-escribe.
	DecrementStock(ctx context.Context, id string, qty decimal.Decimal) (decimal.Decimal, error)
	UpdateStatus(ctx context.Context, id string, status entity.MaterialStatus) error
}
