// Package inventory contiene la política de niveles de stock (servicio de dominio).
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// LowStockThreshold umbral fijo (en la unidad del material) por debajo del cual un
// material está en stock bajo.
const LowStockThreshold = 50

var lowStockLevel = decimal.NewFromInt(LowStockThreshold)

// StatusForStock estado de catálogo al crear o editar un material:
// 0 (o menos) -> OUT_OF_STOCK, < umbral -> LOW_STOCK, resto -> ACTIVE.
func StatusForStock(stock decimal.Decimal) entity.MaterialStatus {
	switch {
	case stock.LessThanOrEqual(decimal.Zero):
		return entity.MaterialOutOfStock
	case stock.LessThan(lowStockLevel):
		return entity.MaterialLowStock
	default:
		return entity.MaterialActive
	}
}

// StatusAfterDecrement decide el estado tras un descuento de stock.
// Si el stock resultante queda >= umbral no hay cambio (changed=false): el material no se
// re-promociona a ACTIVE desde aquí.
func StatusAfterDecrement(remaining decimal.Decimal) (status entity.MaterialStatus, changed bool) {
	if remaining.GreaterThanOrEqual(lowStockLevel) {
		return "", false
	}
	if remaining.LessThanOrEqual(decimal.Zero) {
		return entity.MaterialOutOfStock, true
	}
	return entity.MaterialLowStock, true
}
