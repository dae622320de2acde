package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/ninjasaskeh/vr46/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve los contadores del panel principal.
// GET /api/dashboard/stats
//
// Los contadores se calculan en paralelo; "today" usa el día UTC del servidor.
//
// @Summary      Estadísticas del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondInternal(c, err)
	}
	return ok(c, fiber.StatusOK, stats)
}
