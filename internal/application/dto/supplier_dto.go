package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// SupplierFilterRequest query de GET /api/suppliers.
type SupplierFilterRequest struct {
	PageRequest
	Search string `query:"search"`
	Status string `query:"status"`
}

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name          string   `json:"name"`
	ContactPerson string   `json:"contactPerson"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	Materials     []string `json:"materials"`
}

// UpdateSupplierRequest actualización parcial.
type UpdateSupplierRequest struct {
	Name          *string          `json:"name"`
	ContactPerson *string          `json:"contactPerson"`
	Phone         *string          `json:"phone"`
	Email         *string          `json:"email"`
	Address       *string          `json:"address"`
	Materials     []string         `json:"materials"`
	Status        *string          `json:"status"`
	Rating        *decimal.Decimal `json:"rating"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contactPerson"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	Materials     []string        `json:"materials"`
	Status        string          `json:"status"`
	Rating        decimal.Decimal `json:"rating"`
	TotalOrders   int             `json:"totalOrders"`
	LastOrder     *string         `json:"lastOrder"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// SupplierFromEntity mapea entidad → respuesta.
func SupplierFromEntity(s *entity.Supplier) SupplierResponse {
	materials := s.Materials
	if materials == nil {
		materials = []string{}
	}
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		Materials:     materials,
		Status:        string(s.Status),
		Rating:        s.Rating,
		TotalOrders:   s.TotalOrders,
		LastOrder:     ISOTimePtr(s.LastOrder),
		CreatedAt:     ISOTime(s.CreatedAt),
		UpdatedAt:     ISOTime(s.UpdatedAt),
	}
}
