package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase is the order sub-lifecycle: payment recording, admin-driven
// production progression, and total recalculation.
type UseCase struct {
	orderRepo repository.OrderRepository
	offerRepo repository.OfferRepository
	rfqRepo   repository.RFQRepository
	userRepo  repository.UserRepository
	notifier  Notifier
	pdf       PDFGenerator
}

// NewUseCase builds the order use case.
func NewUseCase(
	orderRepo repository.OrderRepository,
	offerRepo repository.OfferRepository,
	rfqRepo repository.RFQRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	pdf PDFGenerator,
) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		offerRepo: offerRepo,
		rfqRepo:   rfqRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		pdf:       pdf,
	}
}

// Get returns one order with its production trail. Buyers see only their
// own orders.
func (uc *UseCase) Get(ctx context.Context, caller dto.Caller, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.visibleOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}
	updates, err := uc.orderRepo.ListUpdates(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o, updates), nil
}

// List returns the caller's orders: buyers their own, admins all.
func (uc *UseCase) List(ctx context.Context, caller dto.Caller, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Order
		err  error
	)
	switch caller.Role {
	case entity.RoleBuyer:
		list, err = uc.orderRepo.ListByBuyer(ctx, caller.UserID, page.Limit, page.Offset)
	case entity.RoleAdmin:
		list, err = uc.orderRepo.ListAll(ctx, page.Limit, page.Offset)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, nil))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// RecordAdvance records the buyer's deposit: created -> deposit_paid.
// Admin only.
func (uc *UseCase) RecordAdvance(ctx context.Context, orderID string, in dto.RecordAdvanceRequest) (*dto.OrderResponse, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.mustGet(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.OrderStatusCreated {
		return nil, domain.ErrInvalidTransition
	}
	o.Status = entity.OrderStatusDepositPaid
	o.AdvancePayment = in.Amount
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	uc.notifyStatus(ctx, o, "Deposit recorded for your order")
	return toOrderResponse(o, nil), nil
}

// Confirm moves a deposit-paid order to confirmed. Admin only.
func (uc *UseCase) Confirm(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.mustGet(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.OrderStatusDepositPaid {
		return nil, domain.ErrInvalidTransition
	}
	o.Status = entity.OrderStatusConfirmed
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	uc.notifyStatus(ctx, o, "Your order has been confirmed")
	return toOrderResponse(o, nil), nil
}

// AddUpdate appends a production update to the order's audit trail and
// moves the status to the update's stage. Entries are append-only: prior
// entries are never touched. Admin only.
func (uc *UseCase) AddUpdate(ctx context.Context, caller dto.Caller, orderID string, in dto.AddOrderUpdateRequest) (*dto.OrderResponse, error) {
	if in.Stage != entity.OrderStatusProduction && in.Stage != entity.OrderStatusQualityCheck {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.mustGet(ctx, orderID)
	if err != nil {
		return nil, err
	}
	switch o.Status {
	case entity.OrderStatusConfirmed, entity.OrderStatusProduction, entity.OrderStatusQualityCheck:
	default:
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	update := &entity.OrderUpdate{
		ID:        uuid.New().String(),
		OrderID:   o.ID,
		Stage:     in.Stage,
		Detail:    in.Detail,
		CreatedBy: caller.UserID,
		CreatedAt: now,
	}
	if err := uc.orderRepo.AddUpdate(ctx, update); err != nil {
		return nil, err
	}

	if o.Status != in.Stage {
		o.Status = in.Stage
		o.UpdatedAt = now
		if err := uc.orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}
	uc.notifyStatus(ctx, o, "Production update: "+in.Detail)

	updates, err := uc.orderRepo.ListUpdates(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o, updates), nil
}

// Ship marks a non-terminal order as shipped. Admin only.
func (uc *UseCase) Ship(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	return uc.setStatus(ctx, orderID, entity.OrderStatusShipped, "Your order has shipped")
}

// Deliver marks a shipped order as delivered. Admin only.
func (uc *UseCase) Deliver(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.mustGet(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.OrderStatusShipped {
		return nil, domain.ErrInvalidTransition
	}
	o.Status = entity.OrderStatusDelivered
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	uc.notifyStatus(ctx, o, "Your order was delivered")
	return toOrderResponse(o, nil), nil
}

// Cancel terminates a non-terminal order. Allowed for admin or the owning
// buyer.
func (uc *UseCase) Cancel(ctx context.Context, caller dto.Caller, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.mustGet(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if caller.Role != entity.RoleAdmin && o.BuyerID != caller.UserID {
		return nil, domain.ErrForbidden
	}
	if entity.OrderTerminal(o.Status) {
		return nil, domain.ErrInvalidTransition
	}
	o.Status = entity.OrderStatusCancelled
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	uc.notifyStatus(ctx, o, "Your order was cancelled")
	return toOrderResponse(o, nil), nil
}

// Recalculate rederives the order total from the accepted offer's unit
// price and quantity, ignoring whatever is stored. Idempotent; reports the
// previous and new amount. Admin only.
func (uc *UseCase) Recalculate(ctx context.Context, orderID string) (*dto.RecalculateResponse, error) {
	o, err := uc.mustGet(ctx, orderID)
	if err != nil {
		return nil, err
	}
	offer, err := uc.offerRepo.GetByID(ctx, o.OfferID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}
	previous := o.TotalAmount
	newTotal := offer.Total()
	if !previous.Equal(newTotal) {
		o.TotalAmount = newTotal
		o.UpdatedAt = time.Now()
		if err := uc.orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}
	return &dto.RecalculateResponse{
		OrderID:       o.ID,
		PreviousTotal: previous,
		NewTotal:      newTotal,
	}, nil
}

// ConfirmationPDF renders the order confirmation document. Buyers can only
// fetch their own.
func (uc *UseCase) ConfirmationPDF(ctx context.Context, caller dto.Caller, orderID string) ([]byte, error) {
	o, err := uc.visibleOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}
	offer, err := uc.offerRepo.GetByID(ctx, o.OfferID)
	if err != nil {
		return nil, err
	}
	rfq, err := uc.rfqRepo.GetByID(ctx, o.RFQID)
	if err != nil {
		return nil, err
	}
	buyer, err := uc.userRepo.GetByID(ctx, o.BuyerID)
	if err != nil {
		return nil, err
	}
	if offer == nil || rfq == nil || buyer == nil {
		return nil, domain.ErrNotFound
	}
	updates, err := uc.orderRepo.ListUpdates(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateOrderPDF(ctx, o, rfq, offer, buyer, updates)
}

func (uc *UseCase) setStatus(ctx context.Context, orderID, status, message string) (*dto.OrderResponse, error) {
	o, err := uc.mustGet(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if entity.OrderTerminal(o.Status) {
		return nil, domain.ErrInvalidTransition
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	uc.notifyStatus(ctx, o, message)
	return toOrderResponse(o, nil), nil
}

func (uc *UseCase) mustGet(ctx context.Context, orderID string) (*entity.Order, error) {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (uc *UseCase) visibleOrder(ctx context.Context, caller dto.Caller, orderID string) (*entity.Order, error) {
	o, err := uc.mustGet(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if caller.Role != entity.RoleAdmin && o.BuyerID != caller.UserID {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

func (uc *UseCase) notifyStatus(ctx context.Context, o *entity.Order, message string) {
	_ = uc.notifier.Notify(ctx, o.BuyerID, entity.NotificationOrderStatus, "Order "+o.Status, message)
}

func toOrderResponse(o *entity.Order, updates []*entity.OrderUpdate) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:             o.ID,
		RFQID:          o.RFQID,
		OfferID:        o.OfferID,
		BuyerID:        o.BuyerID,
		Status:         o.Status,
		TotalAmount:    o.TotalAmount,
		AdvancePayment: o.AdvancePayment,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	for _, u := range updates {
		resp.Updates = append(resp.Updates, dto.OrderUpdateResponse{
			ID:        u.ID,
			Stage:     u.Stage,
			Detail:    u.Detail,
			CreatedBy: u.CreatedBy,
			CreatedAt: u.CreatedAt,
		})
	}
	return resp
}
