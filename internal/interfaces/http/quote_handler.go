package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/application/rfq"
)

// QuoteHandler handles supplier quotes.
type QuoteHandler struct {
	uc *rfq.UseCase
}

// NewQuoteHandler builds the handler.
func NewQuoteHandler(uc *rfq.UseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Submit godoc
// @Summary      Submit a quote on an invited RFQ (supplier)
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitQuoteRequest  true  "quote data"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/protected/quotes [post]
func (h *QuoteHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.RFQID == "" || in.Quantity <= 0 || !in.UnitPrice.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rfq_id, positive unit_price and quantity are required"})
	}
	out, err := h.uc.SubmitQuote(c.UserContext(), Caller(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List the caller supplier's quotes
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.QuoteListResponse
// @Router       /api/protected/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListQuotes(c.UserContext(), Caller(c), pageFromQuery(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListByRFQ godoc
// @Summary      List every quote on an RFQ (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "RFQ ID"
// @Success      200  {array}  dto.QuoteResponse
// @Router       /api/protected/admin/rfqs/{id}/quotes [get]
func (h *QuoteHandler) ListByRFQ(c *fiber.Ctx) error {
	out, err := h.uc.ListQuotesByRFQ(c.UserContext(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
