package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SupplierStatus estado comercial del proveedor.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "ACTIVE"
	SupplierInactive SupplierStatus = "INACTIVE"
	SupplierPending  SupplierStatus = "PENDING"
)

// ParseSupplierStatus valida un estado de proveedor.
func ParseSupplierStatus(s string) (SupplierStatus, error) {
	switch st := SupplierStatus(s); st {
	case SupplierActive, SupplierInactive, SupplierPending:
		return st, nil
	default:
		return "", fmt.Errorf("estado de proveedor desconocido %q", s)
	}
}

// Supplier proveedor de materiales.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	Materials     []string
	Status        SupplierStatus
	Rating        decimal.Decimal
	TotalOrders   int
	LastOrder     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
