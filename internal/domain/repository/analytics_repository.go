package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository define las consultas de lectura para las estadísticas del dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	CountMaterials(ctx context.Context) (int, error)
	CountWeightRecords(ctx context.Context) (int, error)
	CountSuppliers(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	// CountWeightRecordsBetween cuenta los registros creados en [start, end).
	CountWeightRecordsBetween(ctx context.Context, start, end time.Time) (int, error)
	// CountLowStockMaterials cuenta materiales en LOW_STOCK u OUT_OF_STOCK.
	CountLowStockMaterials(ctx context.Context) (int, error)
	// CountUnreadNotifications cuenta las no leídas visibles para userID (globales + propias).
	CountUnreadNotifications(ctx context.Context, userID string) (int, error)
	// AverageNetWeight promedio del peso neto; cero si no hay registros.
	AverageNetWeight(ctx context.Context) (decimal.Decimal, error)
}
