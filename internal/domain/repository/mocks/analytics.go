package mocks

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo devuelve contadores fijos. Err, si no es nil, lo devuelve CountSuppliers.
// InFlight registra el máximo de consultas simultáneas.
type AnalyticsRepo struct {
	Materials, Records, Suppliers, Users, Today, LowStock, Unread int
	Avg                                                           decimal.Decimal
	Err                                                           error
	Delay                                                         time.Duration

	inflight    atomic.Int32
	MaxInFlight atomic.Int32
	LastUserID  atomic.Value
	LastRange   atomic.Value // [2]time.Time
}

func (r *AnalyticsRepo) enter() func() {
	n := r.inflight.Add(1)
	for {
		cur := r.MaxInFlight.Load()
		if n <= cur || r.MaxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	if r.Delay > 0 {
		time.Sleep(r.Delay)
	}
	return func() { r.inflight.Add(-1) }
}

func (r *AnalyticsRepo) CountMaterials(context.Context) (int, error) {
	defer r.enter()()
	return r.Materials, nil
}

func (r *AnalyticsRepo) CountWeightRecords(context.Context) (int, error) {
	defer r.enter()()
	return r.Records, nil
}

func (r *AnalyticsRepo) CountSuppliers(context.Context) (int, error) {
	defer r.enter()()
	return r.Suppliers, r.Err
}

func (r *AnalyticsRepo) CountUsers(context.Context) (int, error) {
	defer r.enter()()
	return r.Users, nil
}

func (r *AnalyticsRepo) CountWeightRecordsBetween(_ context.Context, start, end time.Time) (int, error) {
	defer r.enter()()
	r.LastRange.Store([2]time.Time{start, end})
	return r.Today, nil
}

func (r *AnalyticsRepo) CountLowStockMaterials(context.Context) (int, error) {
	defer r.enter()()
	return r.LowStock, nil
}

func (r *AnalyticsRepo) CountUnreadNotifications(_ context.Context, userID string) (int, error) {
	defer r.enter()()
	r.LastUserID.Store(userID)
	return r.Unread, nil
}

func (r *AnalyticsRepo) AverageNetWeight(context.Context) (decimal.Decimal, error) {
	defer r.enter()()
	return r.Avg, nil
}
