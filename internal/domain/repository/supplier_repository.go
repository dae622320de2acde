package repository

import (
	"context"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// SupplierFilter filtros del listado. Search busca en nombre, contacto y email.
type SupplierFilter struct {
	Search string
	Status entity.SupplierStatus
	Limit  int
	Offset int
}

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f SupplierFilter) ([]*entity.Supplier, int, error)
}
