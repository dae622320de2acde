package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// MaterialFilterRequest query de GET /api/materials.
type MaterialFilterRequest struct {
	PageRequest
	Search   string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status"`
}

// CreateMaterialRequest entrada para crear un material.
type CreateMaterialRequest struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Supplier  string          `json:"supplier"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Unit      string          `json:"unit"`
	Stock     decimal.Decimal `json:"stock"`
}

// UpdateMaterialRequest actualización parcial; campos nil no se modifican.
type UpdateMaterialRequest struct {
	Name      *string          `json:"name"`
	Category  *string          `json:"category"`
	Supplier  *string          `json:"supplier"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	Unit      *string          `json:"unit"`
	Stock     *decimal.Decimal `json:"stock"`
	Status    *string          `json:"status"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Supplier  string          `json:"supplier"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Unit      string          `json:"unit"`
	Stock     decimal.Decimal `json:"stock"`
	Status    string          `json:"status"`
	CreatedBy string          `json:"createdBy,omitempty"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

// MaterialFromEntity mapea entidad → respuesta.
func MaterialFromEntity(m *entity.Material) MaterialResponse {
	return MaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		Supplier:  m.Supplier,
		UnitPrice: m.UnitPrice,
		Unit:      m.Unit,
		Stock:     m.Stock,
		Status:    string(m.Status),
		CreatedBy: m.CreatedBy,
		CreatedAt: ISOTime(m.CreatedAt),
		UpdatedAt: ISOTime(m.UpdatedAt),
	}
}
