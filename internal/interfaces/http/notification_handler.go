package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/application/usecase"
)

// NotificationHandler bandeja de notificaciones del usuario autenticado.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificaciones
// @Description  Globales y propias, por prioridad y fecha descendente.
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        page        query  int   false  "página"
// @Param        limit       query  int   false  "tamaño de página"
// @Param        unreadOnly  query  bool  false  "sólo no leídas"
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	in := dto.NotificationFilterRequest{PageRequest: pageFrom(c), UnreadOnly: c.QueryBool("unreadOnly", false)}
	list, page, err := h.uc.List(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return okPage(c, list, page)
}

// MarkAllRead godoc
// @Summary      Marcar todas como leídas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        action  query  string  true  "markAllRead"
// @Success      200  {object}  dto.MarkAllReadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/notifications [patch]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if c.Query("action") != "markAllRead" {
		return respondError(c, fiber.StatusBadRequest, "INVALID_ACTION", "Unsupported action")
	}
	out, err := h.uc.MarkAllRead(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// MarkRead godoc
// @Summary      Marcar notificación como leída
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la notificación"
// @Success      200  {object}  dto.NotificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id} [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	out, err := h.uc.MarkRead(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
