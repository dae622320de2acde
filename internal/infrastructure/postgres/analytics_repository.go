package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) count(ctx context.Context, what, query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", what, err)
	}
	return n, nil
}

func (r *AnalyticsRepo) CountMaterials(ctx context.Context) (int, error) {
	return r.count(ctx, "materials", `SELECT COUNT(*) FROM materials`)
}

func (r *AnalyticsRepo) CountWeightRecords(ctx context.Context) (int, error) {
	return r.count(ctx, "weight records", `SELECT COUNT(*) FROM weight_records`)
}

func (r *AnalyticsRepo) CountSuppliers(ctx context.Context) (int, error) {
	return r.count(ctx, "suppliers", `SELECT COUNT(*) FROM suppliers`)
}

func (r *AnalyticsRepo) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, "users", `SELECT COUNT(*) FROM users`)
}

func (r *AnalyticsRepo) CountWeightRecordsBetween(ctx context.Context, start, end time.Time) (int, error) {
	return r.count(ctx, "weight records in range",
		`SELECT COUNT(*) FROM weight_records WHERE created_at >= $1 AND created_at < $2`, start, end)
}

func (r *AnalyticsRepo) CountLowStockMaterials(ctx context.Context) (int, error) {
	return r.count(ctx, "low stock materials",
		`SELECT COUNT(*) FROM materials WHERE status IN ('LOW_STOCK', 'OUT_OF_STOCK')`)
}

func (r *AnalyticsRepo) CountUnreadNotifications(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, "unread notifications",
		`SELECT COUNT(*) FROM notifications WHERE is_read = FALSE AND (user_id IS NULL OR user_id = $1)`, userID)
}

// AverageNetWeight promedio de net_weight; COALESCE a 0 si no hay registros.
func (r *AnalyticsRepo) AverageNetWeight(ctx context.Context) (decimal.Decimal, error) {
	var avg decimal.Decimal
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(AVG(net_weight), 0) FROM weight_records`).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("average net weight: %w", err)
	}
	return avg, nil
}
