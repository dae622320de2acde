package mocks

import (
	"context"
	"sort"

	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo repositorio de proveedores en memoria.
type SupplierRepo struct{ s *Store }

func (r *SupplierRepo) Create(_ context.Context, sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("suppliers.Create"); err != nil {
		return err
	}
	if _, ok := r.s.suppliers[sp.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.suppliers[sp.ID] = *sp
	return nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("suppliers.GetByID"); err != nil {
		return nil, err
	}
	sp, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &sp, nil
}

func (r *SupplierRepo) Update(_ context.Context, sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("suppliers.Update"); err != nil {
		return err
	}
	if _, ok := r.s.suppliers[sp.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.suppliers[sp.ID] = *sp
	return nil
}

func (r *SupplierRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("suppliers.Delete"); err != nil {
		return err
	}
	if _, ok := r.s.suppliers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.suppliers, id)
	return nil
}

func (r *SupplierRepo) List(_ context.Context, f repository.SupplierFilter) ([]*entity.Supplier, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("suppliers.List"); err != nil {
		return nil, 0, err
	}
	var out []*entity.Supplier
	for _, sp := range r.s.suppliers {
		if f.Search != "" && !containsFold(sp.Name, f.Search) &&
			!containsFold(sp.ContactPerson, f.Search) && !containsFold(sp.Email, f.Search) {
			continue
		}
		if f.Status != "" && sp.Status != f.Status {
			continue
		}
		sp := sp
		out = append(out, &sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, f.Limit, f.Offset), len(out), nil
}
