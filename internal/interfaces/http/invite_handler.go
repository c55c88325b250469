package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/application/rfq"
)

// InviteHandler handles supplier invites.
type InviteHandler struct {
	uc *rfq.UseCase
}

// NewInviteHandler builds the handler.
func NewInviteHandler(uc *rfq.UseCase) *InviteHandler {
	return &InviteHandler{uc: uc}
}

// InviteSuppliers godoc
// @Summary      Invite suppliers to quote on an RFQ (admin)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InviteSuppliersRequest  true  "rfq_id, supplier_ids"
// @Success      201   {array}   dto.InviteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/protected/admin/invites [post]
func (h *InviteHandler) InviteSuppliers(c *fiber.Ctx) error {
	var in dto.InviteSuppliersRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.RFQID == "" || len(in.SupplierIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rfq_id and supplier_ids are required"})
	}
	out, err := h.uc.InviteSuppliers(c.UserContext(), Caller(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List the caller supplier's invites
// @Tags         invites
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.InviteListResponse
// @Router       /api/protected/invites [get]
func (h *InviteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListInvites(c.UserContext(), Caller(c), pageFromQuery(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListByRFQ godoc
// @Summary      List every invite on an RFQ (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "RFQ ID"
// @Success      200  {array}  dto.InviteResponse
// @Router       /api/protected/admin/rfqs/{id}/invites [get]
func (h *InviteHandler) ListByRFQ(c *fiber.Ctx) error {
	out, err := h.uc.ListInvitesByRFQ(c.UserContext(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Decline godoc
// @Summary      Decline an invite (supplier)
// @Tags         invites
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Invite ID"
// @Success      200  {object}  dto.InviteResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/protected/invites/{id}/decline [post]
func (h *InviteHandler) Decline(c *fiber.Ctx) error {
	out, err := h.uc.DeclineInvite(c.UserContext(), Caller(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
