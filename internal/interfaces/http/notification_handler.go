package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobforge/jobwork-api/internal/application/usecase"
)

// NotificationHandler handles per-user notifications.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler builds the handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      List the caller's notifications
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.NotificationListResponse
// @Router       /api/protected/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), Caller(c), pageFromQuery(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Security     Bearer
// @Param        id   path  string  true  "Notification ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/protected/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.UserContext(), Caller(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
