package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalMaterials      int             `json:"totalMaterials"`
	TotalWeightRecords  int             `json:"totalWeightRecords"`
	TotalSuppliers      int             `json:"totalSuppliers"`
	TotalUsers          int             `json:"totalUsers"`
	TodayRecords        int             `json:"todayRecords"`
	LowStockMaterials   int             `json:"lowStockMaterials"` // LOW_STOCK u OUT_OF_STOCK
	UnreadNotifications int             `json:"unreadNotifications"`
	AvgWeight           decimal.Decimal `json:"avgWeight"` // promedio de netWeight, 0 sin registros
}
