package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/application/usecase"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// SupplierHandler handles supplier capability profiles.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler builds the handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// GetProfile godoc
// @Summary      Get the caller supplier's profile
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplierProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/protected/supplier/profile [get]
func (h *SupplierHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.UserContext(), Caller(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpsertProfile godoc
// @Summary      Create or update the caller supplier's profile
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertSupplierProfileRequest  true  "capabilities, certifications, moq"
// @Success      200   {object}  dto.SupplierProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/protected/supplier/profile [put]
func (h *SupplierHandler) UpsertProfile(c *fiber.Ctx) error {
	var in dto.UpsertSupplierProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if len(in.Capabilities) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "at least one capability is required"})
	}
	out, err := h.uc.UpsertProfile(c.UserContext(), Caller(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Set a supplier's trust tier (admin)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Profile ID"
// @Param        body  body  dto.VerifySupplierRequest  true  "target tier"
// @Success      200   {object}  dto.SupplierProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/protected/admin/suppliers/{id}/verify [put]
func (h *SupplierHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifySupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if !entity.ValidVerifiedStatus(in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown trust tier"})
	}
	out, err := h.uc.Verify(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
