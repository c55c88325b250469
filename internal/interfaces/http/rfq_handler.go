package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/application/rfq"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// RFQHandler handles the RFQ lifecycle endpoints.
type RFQHandler struct {
	uc *rfq.UseCase
}

// NewRFQHandler builds the handler.
func NewRFQHandler(uc *rfq.UseCase) *RFQHandler {
	return &RFQHandler{uc: uc}
}

// Create godoc
// @Summary      Create an RFQ (draft or submitted)
// @Tags         rfqs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRFQRequest  true  "RFQ data"
// @Success      201   {object}  dto.RFQResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/protected/rfqs [post]
func (h *RFQHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRFQRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title is required"})
	}
	out, err := h.uc.Create(c.UserContext(), Caller(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Get an RFQ visible to the caller
// @Tags         rfqs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "RFQ ID"
// @Success      200  {object}  dto.RFQResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/protected/rfqs/{id} [get]
func (h *RFQHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.Get(c.UserContext(), Caller(c), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List RFQs scoped to the caller's role
// @Tags         rfqs
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.RFQListResponse
// @Router       /api/protected/rfqs [get]
func (h *RFQHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), Caller(c), pageFromQuery(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Submit a draft RFQ for review
// @Tags         rfqs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "RFQ ID"
// @Success      200  {object}  dto.RFQResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/protected/rfqs/{id}/submit [post]
func (h *RFQHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.UserContext(), Caller(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancel an RFQ (owner or admin)
// @Tags         rfqs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "RFQ ID"
// @Success      200  {object}  dto.RFQResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/protected/rfqs/{id}/cancel [post]
func (h *RFQHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.UserContext(), Caller(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MarkUnderReview godoc
// @Summary      Move a submitted RFQ into review (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "RFQ ID"
// @Success      200  {object}  dto.RFQResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/protected/admin/rfqs/{id}/review [post]
func (h *RFQHandler) MarkUnderReview(c *fiber.Ctx) error {
	out, err := h.uc.MarkUnderReview(c.UserContext(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// OverrideStatus godoc
// @Summary      Force-set an RFQ status (admin)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "RFQ ID"
// @Param        body  body  dto.OverrideRFQStatusRequest  true  "target status"
// @Success      200   {object}  dto.RFQResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/protected/admin/rfqs/{id}/status [put]
func (h *RFQHandler) OverrideStatus(c *fiber.Ctx) error {
	var in dto.OverrideRFQStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if !entity.ValidRFQStatus(in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown rfq status"})
	}
	out, err := h.uc.OverrideStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
