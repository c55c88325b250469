package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/application/usecase"
)

// CompanyHandler handles the caller's company profile.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler builds the handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetMine godoc
// @Summary      Get the caller's company
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/protected/company [get]
func (h *CompanyHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetMine(c.UserContext(), Caller(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateMine godoc
// @Summary      Update the caller's company (partial)
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyRequest  true  "fields to update"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/protected/company [put]
func (h *CompanyHandler) UpdateMine(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateMine(c.UserContext(), Caller(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
