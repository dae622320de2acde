package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/inventory"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para materiales. El estado se deriva del stock.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// checkStock stock no negativo y representable en la columna NUMERIC(14, 3).
func checkStock(stock decimal.Decimal, verr *domain.ValidationError) {
	switch {
	case stock.IsNegative():
		verr.Add("stock", "Stock cannot be negative")
	case !entity.WeightPrecisionOK(stock):
		verr.Add("stock", fmt.Sprintf("At most %d decimal places allowed", entity.WeightDecimals))
	case stock.GreaterThanOrEqual(entity.MaxWeight):
		verr.Add("stock", "Stock is too large")
	}
}

// Create crea un material con estado derivado del stock inicial.
func (uc *MaterialUseCase) Create(ctx context.Context, createdBy string, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	verr := &domain.ValidationError{}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		verr.Add("name", "Name is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		verr.Add("category", "Category is required")
	}
	if strings.TrimSpace(in.Unit) == "" {
		verr.Add("unit", "Unit is required")
	}
	if in.UnitPrice.IsNegative() {
		verr.Add("unitPrice", "Unit price cannot be negative")
	}
	checkStock(in.Stock, verr)
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	material := &entity.Material{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Supplier:  in.Supplier,
		UnitPrice: in.UnitPrice,
		Unit:      in.Unit,
		Stock:     in.Stock,
		Status:    inventory.StatusForStock(in.Stock),
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, material); err != nil {
		return nil, err
	}
	out := dto.MaterialFromEntity(material)
	return &out, nil
}

// GetByID obtiene un material; (nil, nil) si no existe.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	out := dto.MaterialFromEntity(material)
	return &out, nil
}

// Update actualiza campos presentes. Si llega stock, el estado se vuelve a derivar;
// un estado explícito (p. ej. INACTIVE) tiene prioridad.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}

	verr := &domain.ValidationError{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			verr.Add("name", "Name cannot be empty")
		}
		material.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		material.Category = *in.Category
	}
	if in.Supplier != nil {
		material.Supplier = *in.Supplier
	}
	if in.Unit != nil {
		material.Unit = *in.Unit
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			verr.Add("unitPrice", "Unit price cannot be negative")
		}
		material.UnitPrice = *in.UnitPrice
	}
	if in.Stock != nil {
		checkStock(*in.Stock, verr)
		material.Stock = *in.Stock
		material.Status = inventory.StatusForStock(material.Stock)
	}
	if in.Status != nil {
		st, err := entity.ParseMaterialStatus(*in.Status)
		if err != nil {
			verr.Add("status", "Invalid material status")
		}
		material.Status = st
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	material.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, material); err != nil {
		return nil, err
	}
	out := dto.MaterialFromEntity(material)
	return &out, nil
}

// Delete elimina un material. ErrConflict si tiene registros de pesaje.
func (uc *MaterialUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List lista materiales con filtros y paginación.
func (uc *MaterialUseCase) List(ctx context.Context, in dto.MaterialFilterRequest) ([]dto.MaterialResponse, dto.Pagination, error) {
	in.DefaultPage()
	f := repository.MaterialFilter{
		Search:   strings.TrimSpace(in.Search),
		Category: in.Category,
		Limit:    in.Limit,
		Offset:   in.Offset(),
	}
	if in.Status != "" {
		st, err := entity.ParseMaterialStatus(in.Status)
		if err != nil {
			return nil, dto.Pagination{}, domain.ErrInvalidInput
		}
		f.Status = st
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MaterialFromEntity(m))
	}
	return out, dto.NewPagination(in.PageRequest, total), nil
}
