package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ninjasaskeh/vr46/internal/application/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler exportaciones del libro de pesajes.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parseDay acepta "2006-01-02" o RFC3339. Un día sin hora como límite superior
// se convierte en el inicio del día siguiente (exclusivo).
func parseDay(s string, upper bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		if upper {
			t = t.AddDate(0, 0, 1)
		}
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

// ExportWeightRecords godoc
// @Summary      Exportar pesajes a Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from        query  string  false  "desde (2006-01-02 o RFC3339)"
// @Param        to          query  string  false  "hasta, inclusive si es fecha"
// @Param        status      query  string  false  "estado del registro"
// @Param        materialId  query  string  false  "ID del material"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/weight-records.xlsx [get]
func (h *ReportHandler) ExportWeightRecords(c *fiber.Ctx) error {
	from, err := parseDay(c.Query("from"), false)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "INVALID_DATE", "Invalid 'from' date")
	}
	to, err := parseDay(c.Query("to"), true)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "INVALID_DATE", "Invalid 'to' date")
	}
	data, filename, err := h.uc.ExportWeightRecords(c.UserContext(), report.ExportFilter{
		From:       from,
		To:         to,
		Status:     c.Query("status"),
		MaterialID: c.Query("materialId"),
	})
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
