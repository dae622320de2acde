package weighing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/inventory"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// StockAdjustment resultado del descuento de stock.
type StockAdjustment struct {
	MaterialID string
	Remaining  decimal.Decimal
	Status     entity.MaterialStatus // vacío si no hubo cambio
	LowStock   bool
}

// AdjustStock descuenta net del material con un UPDATE atómico relativo y, si el stock
// resultante queda bajo el umbral, pasa el material a LOW_STOCK u OUT_OF_STOCK.
// Debe ejecutarse con repos atados a la misma transacción que el registro de pesaje.
func AdjustStock(ctx context.Context, materials repository.MaterialRepository,
	materialID string, net decimal.Decimal) (StockAdjustment, error) {
	remaining, err := materials.DecrementStock(ctx, materialID, net)
	if err != nil {
		return StockAdjustment{}, &domain.PersistenceError{Op: "decrement stock", Err: err}
	}
	adj := StockAdjustment{MaterialID: materialID, Remaining: remaining}

	status, changed := inventory.StatusAfterDecrement(remaining)
	if !changed {
		return adj, nil
	}
	if err := materials.UpdateStatus(ctx, materialID, status); err != nil {
		return StockAdjustment{}, &domain.PersistenceError{Op: "update material status", Err: err}
	}
	adj.Status = status
	adj.LowStock = true
	return adj, nil
}
