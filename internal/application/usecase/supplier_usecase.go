package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// Create crea un proveedor en estado ACTIVE.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	verr := &domain.ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		verr.Add("name", "Name is required")
	}
	if strings.TrimSpace(in.ContactPerson) == "" {
		verr.Add("contactPerson", "Contact person is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		verr.Add("phone", "Phone is required")
	}
	if !validEmail(in.Email) {
		verr.Add("email", "Invalid email")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		Materials:     in.Materials,
		Status:        entity.SupplierActive,
		Rating:        decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	out := dto.SupplierFromEntity(supplier)
	return &out, nil
}

// Update actualiza un proveedor; (nil, nil) si no existe.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}

	verr := &domain.ValidationError{}
	if in.Name != nil {
		supplier.Name = strings.TrimSpace(*in.Name)
		if supplier.Name == "" {
			verr.Add("name", "Name cannot be empty")
		}
	}
	if in.ContactPerson != nil {
		supplier.ContactPerson = *in.ContactPerson
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Email != nil {
		if !validEmail(*in.Email) {
			verr.Add("email", "Invalid email")
		}
		supplier.Email = *in.Email
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.Materials != nil {
		supplier.Materials = in.Materials
	}
	if in.Status != nil {
		st, err := entity.ParseSupplierStatus(*in.Status)
		if err != nil {
			verr.Add("status", "Invalid supplier status")
		}
		supplier.Status = st
	}
	if in.Rating != nil {
		if in.Rating.IsNegative() || in.Rating.GreaterThan(decimal.NewFromInt(5)) {
			verr.Add("rating", "Rating must be between 0 and 5")
		}
		supplier.Rating = *in.Rating
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	supplier.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	out := dto.SupplierFromEntity(supplier)
	return &out, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List lista proveedores con búsqueda en nombre, contacto y email.
func (uc *SupplierUseCase) List(ctx context.Context, in dto.SupplierFilterRequest) ([]dto.SupplierResponse, dto.Pagination, error) {
	in.DefaultPage()
	f := repository.SupplierFilter{Search: strings.TrimSpace(in.Search), Limit: in.Limit, Offset: in.Offset()}
	if in.Status != "" {
		st, err := entity.ParseSupplierStatus(in.Status)
		if err != nil {
			return nil, dto.Pagination{}, domain.ErrInvalidInput
		}
		f.Status = st
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SupplierFromEntity(s))
	}
	return out, dto.NewPagination(in.PageRequest, total), nil
}
