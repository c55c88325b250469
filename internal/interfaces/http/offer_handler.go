package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/application/rfq"
)

// OfferHandler handles curated offers.
type OfferHandler struct {
	uc *rfq.UseCase
}

// NewOfferHandler builds the handler.
func NewOfferHandler(uc *rfq.UseCase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

// Compose godoc
// @Summary      Compose a draft offer from quotes (admin)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ComposeOfferRequest  true  "offer data"
// @Success      201   {object}  dto.OfferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/protected/admin/offers [post]
func (h *OfferHandler) Compose(c *fiber.Ctx) error {
	var in dto.ComposeOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.RFQID == "" || len(in.QuoteIDs) == 0 || in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rfq_id, quote_ids and title are required"})
	}
	out, err := h.uc.ComposeOffer(c.UserContext(), Caller(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Publish godoc
// @Summary      Publish a draft offer to the buyer (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Offer ID"
// @Success      200  {object}  dto.OfferResponse
// @Failure      409  {object}  dto.ErrorResponse  "ALREADY_PUBLISHED on a second publish"
// @Router       /api/protected/admin/offers/{id}/publish [post]
func (h *OfferHandler) Publish(c *fiber.Ctx) error {
	out, err := h.uc.PublishOffer(c.UserContext(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Accept godoc
// @Summary      Accept a published offer, creating an order (buyer)
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Offer ID"
// @Success      201  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/protected/offers/{id}/accept [post]
func (h *OfferHandler) Accept(c *fiber.Ctx) error {
	out, err := h.uc.AcceptOffer(c.UserContext(), Caller(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List published offers on the caller buyer's RFQs
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.OfferListResponse
// @Router       /api/protected/offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOffers(c.UserContext(), Caller(c), pageFromQuery(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListByRFQ godoc
// @Summary      List every offer on an RFQ, drafts included (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "RFQ ID"
// @Success      200  {array}  dto.OfferResponse
// @Router       /api/protected/admin/rfqs/{id}/offers [get]
func (h *OfferHandler) ListByRFQ(c *fiber.Ctx) error {
	out, err := h.uc.ListOffersByRFQ(c.UserContext(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
