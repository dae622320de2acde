package http

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/application/weighing"
	"github.com/ninjasaskeh/vr46/internal/domain"
)

// IoTHandler endpoints de las básculas (sin autenticación).
type IoTHandler struct {
	uc *weighing.UseCase
}

// NewIoTHandler construye el handler.
func NewIoTHandler(uc *weighing.UseCase) *IoTHandler {
	return &IoTHandler{uc: uc}
}

// Ingest godoc
// @Summary      Recibir lectura de báscula
// @Tags         iot
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "deviceId, materialId, grossWeight, tareWeight, vehicleNumber, operatorId, timestamp?"
// @Success      200   {object}  dto.WeighingAcceptedDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/iot/weighing [post]
func (h *IoTHandler) Ingest(c *fiber.Ctx) error {
	raw, err := decodeObject(c.Body())
	if err != nil {
		verr := &domain.ValidationError{}
		verr.Add("body", "Expected object")
		return iotValidation(c, verr)
	}

	res, err := h.uc.Ingest(c.UserContext(), raw)
	if err != nil {
		return iotError(c, err)
	}
	return c.JSON(dto.APIResponse{
		Success: true,
		Data: dto.WeighingAcceptedDTO{
			ID:        res.ID,
			NetWeight: res.NetWeight,
			Material:  res.Material,
			Operator:  res.Operator,
			Timestamp: dto.ISOTime(res.Timestamp),
		},
	})
}

// Recent godoc
// @Summary      Últimas lecturas registradas
// @Tags         iot
// @Produce      json
// @Param        limit  query  int  false  "máximo de registros (por defecto 10, tope 100)"
// @Success      200    {array}   dto.RecentWeighingDTO
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/iot/weighing [get]
func (h *IoTHandler) Recent(c *fiber.Ctx) error {
	list, err := h.uc.Recent(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		c.Locals(localCause, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to fetch weighing data"})
	}
	out := make([]dto.RecentWeighingDTO, 0, len(list))
	for _, r := range list {
		out = append(out, dto.RecentWeighingFromEntity(r))
	}
	return c.JSON(dto.APIResponse{Success: true, Data: out})
}

// decodeObject exige un objeto JSON; los números quedan como json.Number.
func decodeObject(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("cuerpo nulo")
	}
	return raw, nil
}

func iotValidation(c *fiber.Ctx, verr *domain.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error:   "Invalid data format",
		Details: verr.Fields,
	})
}

// iotError mapea los errores del flujo de ingesta a la respuesta que esperan los dispositivos.
func iotError(c *fiber.Ctx, err error) error {
	var (
		verr *domain.ValidationError
		nf   *domain.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		return iotValidation(c, verr)
	case errors.Is(err, domain.ErrInvalidWeight):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Net weight must be positive (gross weight > tare weight)",
		})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: notFoundMessage(nf.Entity)})
	case errors.Is(err, domain.ErrNotOperator):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "User is not authorized as an operator"})
	default:
		c.Locals(localCause, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
}
