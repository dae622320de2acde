// Package analytics contiene los casos de uso de estadísticas del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// DashboardUseCase genera las estadísticas de GET /api/dashboard/stats.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetStats construye DashboardStatsDTO para el usuario indicado.
//
// Ocho consultas en paralelo; las notificaciones no leídas cuentan las globales más
// las del usuario. "Hoy" es [00:00, 24:00) en la zona horaria del servidor.
func (uc *DashboardUseCase) GetStats(ctx context.Context, userID string) (*dto.DashboardStatsDTO, error) {
	now := uc.now()

	// ── Rango de hoy ───────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)

	// ── Goroutines para paralelizar las consultas DB ──────────────────────────
	type countResult struct {
		n   int
		err error
	}
	type avgResult struct {
		avg decimal.Decimal
		err error
	}

	count := func(fn func(context.Context) (int, error)) <-chan countResult {
		ch := make(chan countResult, 1)
		go func() {
			n, err := fn(ctx)
			ch <- countResult{n, err}
		}()
		return ch
	}

	materialsCh := count(uc.analyticsRepo.CountMaterials)
	recordsCh := count(uc.analyticsRepo.CountWeightRecords)
	suppliersCh := count(uc.analyticsRepo.CountSuppliers)
	usersCh := count(uc.analyticsRepo.CountUsers)
	lowStockCh := count(uc.analyticsRepo.CountLowStockMaterials)
	todayCh := count(func(ctx context.Context) (int, error) {
		return uc.analyticsRepo.CountWeightRecordsBetween(ctx, todayStart, todayEnd)
	})
	unreadCh := count(func(ctx context.Context) (int, error) {
		return uc.analyticsRepo.CountUnreadNotifications(ctx, userID)
	})
	avgCh := make(chan avgResult, 1)
	go func() {
		avg, err := uc.analyticsRepo.AverageNetWeight(ctx)
		avgCh <- avgResult{avg, err}
	}()

	materials := <-materialsCh
	records := <-recordsCh
	suppliers := <-suppliersCh
	users := <-usersCh
	lowStock := <-lowStockCh
	today := <-todayCh
	unread := <-unreadCh
	avg := <-avgCh

	for _, r := range []struct {
		what string
		err  error
	}{
		{"materiales", materials.err},
		{"registros de pesaje", records.err},
		{"proveedores", suppliers.err},
		{"usuarios", users.err},
		{"stock bajo", lowStock.err},
		{"registros de hoy", today.err},
		{"notificaciones no leídas", unread.err},
	} {
		if r.err != nil {
			return nil, fmt.Errorf("dashboard: %s: %w", r.what, r.err)
		}
	}
	if avg.err != nil {
		return nil, fmt.Errorf("dashboard: peso promedio: %w", avg.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	return &dto.DashboardStatsDTO{
		TotalMaterials:      materials.n,
		TotalWeightRecords:  records.n,
		TotalSuppliers:      suppliers.n,
		TotalUsers:          users.n,
		TodayRecords:        today.n,
		LowStockMaterials:   lowStock.n,
		UnreadNotifications: unread.n,
		AvgWeight:           avg.avg.Round(2),
	}, nil
}
