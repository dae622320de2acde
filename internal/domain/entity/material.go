package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaterialStatus estado de inventario de un material.
type MaterialStatus string

const (
	MaterialActive     MaterialStatus = "ACTIVE"
	MaterialLowStock   MaterialStatus = "LOW_STOCK"
	MaterialOutOfStock MaterialStatus = "OUT_OF_STOCK"
	MaterialInactive   MaterialStatus = "INACTIVE"
)

// ParseMaterialStatus valida un estado recibido desde la API.
func ParseMaterialStatus(s string) (MaterialStatus, error) {
	switch st := MaterialStatus(s); st {
	case MaterialActive, MaterialLowStock, MaterialOutOfStock, MaterialInactive:
		return st, nil
	default:
		return "", fmt.Errorf("estado de material desconocido %q", s)
	}
}

// Material representa una materia prima con stock compartido.
type Material struct {
	ID        string
	Name      string
	Category  string
	Supplier  string
	UnitPrice decimal.Decimal
	Unit      string // kg, ton, m3...
	Stock     decimal.Decimal
	Status    MaterialStatus
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
