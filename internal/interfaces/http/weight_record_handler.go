package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/application/report"
	"github.com/ninjasaskeh/vr46/internal/application/usecase"
	"github.com/ninjasaskeh/vr46/internal/application/weighing"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// WeightRecordHandler libro de pesajes para el dashboard.
type WeightRecordHandler struct {
	records  *usecase.WeightRecordUseCase
	weighing *weighing.UseCase
	reports  *report.UseCase
}

// NewWeightRecordHandler construye el handler.
func NewWeightRecordHandler(records *usecase.WeightRecordUseCase, w *weighing.UseCase, reports *report.UseCase) *WeightRecordHandler {
	return &WeightRecordHandler{records: records, weighing: w, reports: reports}
}

// List godoc
// @Summary      Listar registros de pesaje
// @Description  Un OPERATOR sólo ve sus propios registros.
// @Tags         weight-records
// @Security     Bearer
// @Produce      json
// @Param        page        query  int     false  "página"
// @Param        limit       query  int     false  "tamaño de página"
// @Param        status      query  string  false  "PENDING | IN_PROGRESS | COMPLETED | CANCELLED"
// @Param        materialId  query  string  false  "ID del material"
// @Success      200  {array}   dto.WeightRecordResponse
// @Router       /api/weight-records [get]
func (h *WeightRecordHandler) List(c *fiber.Ctx) error {
	in := dto.WeightRecordFilterRequest{
		PageRequest: pageFrom(c),
		Status:      c.Query("status"),
		MaterialID:  c.Query("materialId"),
	}
	list, page, err := h.records.List(c.UserContext(), GetUserID(c), GetRole(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return okPage(c, list, page)
}

// GetByID godoc
// @Summary      Obtener registro de pesaje
// @Tags         weight-records
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.WeightRecordResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/weight-records/{id} [get]
func (h *WeightRecordHandler) GetByID(c *fiber.Ctx) error {
	rec, err := h.records.GetByID(c.UserContext(), c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, dto.WeightRecordFromEntity(rec))
}

// Create godoc
// @Summary      Registrar pesaje manual
// @Description  El registro queda PENDING; el stock se descuenta al completarlo.
// @Tags         weight-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWeightRecordRequest  true  "Datos del pesaje"
// @Success      201   {object}  dto.WeightRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/weight-records [post]
func (h *WeightRecordHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWeightRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	rec, err := h.weighing.CreateManual(c.UserContext(), weighing.ManualInput{
		MaterialID:    in.MaterialID,
		VehicleNumber: in.VehicleNumber,
		GrossWeight:   in.GrossWeight,
		TareWeight:    in.TareWeight,
		OperatorID:    GetUserID(c),
	})
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, dto.WeightRecordFromEntity(rec))
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un pesaje
// @Description  PENDING → IN_PROGRESS | CANCELLED; IN_PROGRESS → COMPLETED | CANCELLED.
// @Tags         weight-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID del registro"
// @Param        body  body  dto.UpdateWeightStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.WeightRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/weight-records/{id}/status [patch]
func (h *WeightRecordHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateWeightStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	next, err := entity.ParseWeightStatus(in.Status)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "INVALID_STATUS", "Invalid weight record status")
	}
	rec, err := h.weighing.UpdateStatus(c.UserContext(), c.Params("id"), next, GetUserID(c), GetRole(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, dto.WeightRecordFromEntity(rec))
}

// Ticket godoc
// @Summary      Ticket PDF de un pesaje completado
// @Tags         weight-records
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del registro"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/weight-records/{id}/ticket [get]
func (h *WeightRecordHandler) Ticket(c *fiber.Ctx) error {
	pdf, filename, err := h.reports.Ticket(c.UserContext(), c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
