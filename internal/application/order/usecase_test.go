package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/application/order"
	"github.com/jobforge/jobwork-api/internal/application/usecase"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/infrastructure/memory"
)

// stubPDF stands in for the maroto generator; the rendering itself is not
// under test here.
type stubPDF struct{}

func (stubPDF) GenerateOrderPDF(_ context.Context, _ *entity.Order, _ *entity.RFQ, _ *entity.CuratedOffer, _ *entity.User, _ []*entity.OrderUpdate) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

type fixture struct {
	uc     *order.UseCase
	users  *memory.UserRepo
	rfqs   *memory.RFQRepo
	offers *memory.OfferRepo
	orders *memory.OrderRepo
}

func newFixture() *fixture {
	store := memory.NewStore()
	f := &fixture{
		users:  memory.NewUserRepository(store),
		rfqs:   memory.NewRFQRepository(store),
		offers: memory.NewOfferRepository(store),
		orders: memory.NewOrderRepository(store),
	}
	notifier := usecase.NewNotificationUseCase(memory.NewNotificationRepository(store))
	f.uc = order.NewUseCase(f.orders, f.offers, f.rfqs, f.users, notifier, stubPDF{})
	return f
}

func (f *fixture) seedBuyer(t *testing.T) dto.Caller {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:        uuid.New().String(),
		Email:     uuid.New().String() + "@example.com",
		Role:      entity.RoleBuyer,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	u.Name = u.Email
	require.NoError(t, f.users.Create(context.Background(), u))
	return dto.Caller{UserID: u.ID, Role: u.Role}
}

func adminCaller() dto.Caller {
	return dto.Caller{UserID: uuid.New().String(), Role: entity.RoleAdmin}
}

// seedOrder creates an accepted RFQ, a published offer priced 2450 x 100
// and an order in the given status.
func (f *fixture) seedOrder(t *testing.T, buyer dto.Caller, status string) *entity.Order {
	t.Helper()
	now := time.Now()
	r := &entity.RFQ{
		ID:        uuid.New().String(),
		BuyerID:   buyer.UserID,
		Title:     "Machined brackets",
		Status:    entity.RFQStatusAccepted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.rfqs.Create(context.Background(), r))
	published := now
	offer := &entity.CuratedOffer{
		ID:             uuid.New().String(),
		RFQID:          r.ID,
		QuoteIDs:       []string{uuid.New().String()},
		Title:          "Curated: machined brackets",
		UnitPrice:      decimal.NewFromInt(2450),
		Quantity:       100,
		AdvancePercent: decimal.NewFromInt(30),
		PublishedAt:    &published,
		CreatedBy:      "admin-seed",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, f.offers.Create(context.Background(), offer))
	o := &entity.Order{
		ID:             uuid.New().String(),
		RFQID:          r.ID,
		OfferID:        offer.ID,
		BuyerID:        buyer.UserID,
		Status:         status,
		TotalAmount:    offer.Total(),
		AdvancePayment: offer.Advance(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, f.orders.Create(context.Background(), o))
	return o
}

// ──────────────────────────────────────────────────────────────────────────────
// Payment steps
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordAdvance_MovesCreatedToDepositPaid(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusCreated)

	out, err := f.uc.RecordAdvance(context.Background(), o.ID, dto.RecordAdvanceRequest{Amount: decimal.NewFromInt(73500)})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDepositPaid, out.Status)
	assert.True(t, out.AdvancePayment.Equal(decimal.NewFromInt(73500)))
}

func TestRecordAdvance_OnlyFromCreated(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusConfirmed)

	_, err := f.uc.RecordAdvance(context.Background(), o.ID, dto.RecordAdvanceRequest{Amount: decimal.NewFromInt(100)})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRecordAdvance_NonPositiveAmount_Rejected(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusCreated)

	_, err := f.uc.RecordAdvance(context.Background(), o.ID, dto.RecordAdvanceRequest{Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfirm_RequiresDepositPaid(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusDepositPaid)

	out, err := f.uc.Confirm(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, out.Status)

	// A second confirm is no longer a valid transition.
	_, err = f.uc.Confirm(context.Background(), o.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Production trail
// ──────────────────────────────────────────────────────────────────────────────

func TestAddUpdate_AppendsTrailAndFollowsStage(t *testing.T) {
	f := newFixture()
	admin := adminCaller()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusConfirmed)

	first, err := f.uc.AddUpdate(context.Background(), admin, o.ID, dto.AddOrderUpdateRequest{
		Stage:  entity.OrderStatusProduction,
		Detail: "castings poured",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProduction, first.Status)
	require.Len(t, first.Updates, 1)

	second, err := f.uc.AddUpdate(context.Background(), admin, o.ID, dto.AddOrderUpdateRequest{
		Stage:  entity.OrderStatusQualityCheck,
		Detail: "CMM inspection started",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusQualityCheck, second.Status)

	// Append-only: the first entry survives untouched.
	require.Len(t, second.Updates, 2)
	assert.Equal(t, "castings poured", second.Updates[0].Detail)
	assert.Equal(t, entity.OrderStatusProduction, second.Updates[0].Stage)
	assert.Equal(t, "CMM inspection started", second.Updates[1].Detail)
}

func TestAddUpdate_InvalidStage_Rejected(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusConfirmed)

	_, err := f.uc.AddUpdate(context.Background(), adminCaller(), o.ID, dto.AddOrderUpdateRequest{
		Stage:  entity.OrderStatusShipped,
		Detail: "not a production stage",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddUpdate_BeforeConfirmation_Rejected(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusCreated)

	_, err := f.uc.AddUpdate(context.Background(), adminCaller(), o.ID, dto.AddOrderUpdateRequest{
		Stage:  entity.OrderStatusProduction,
		Detail: "too early",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Shipping, delivery, cancellation
// ──────────────────────────────────────────────────────────────────────────────

func TestShip_ThenDeliver(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusQualityCheck)

	out, err := f.uc.Ship(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, out.Status)

	out, err = f.uc.Deliver(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, out.Status)
}

func TestDeliver_RequiresShipped(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusConfirmed)

	_, err := f.uc.Deliver(context.Background(), o.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestShip_TerminalOrder_Rejected(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusCancelled)

	_, err := f.uc.Ship(context.Background(), o.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancel_OwningBuyer_Allowed(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	o := f.seedOrder(t, buyer, entity.OrderStatusCreated)

	out, err := f.uc.Cancel(context.Background(), buyer, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, out.Status)
}

func TestCancel_OtherBuyer_Forbidden(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusCreated)
	intruder := f.seedBuyer(t)

	_, err := f.uc.Cancel(context.Background(), intruder, o.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCancel_DeliveredOrder_Rejected(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	o := f.seedOrder(t, buyer, entity.OrderStatusDelivered)

	_, err := f.uc.Cancel(context.Background(), buyer, o.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recalculate
// ──────────────────────────────────────────────────────────────────────────────

// The total is always rederived from the offer, ignoring the stored amount.
func TestRecalculate_FixesDriftedTotalIdempotently(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusConfirmed)

	// Corrupt the stored total.
	o.TotalAmount = decimal.NewFromInt(999)
	require.NoError(t, f.orders.Update(context.Background(), o))

	out, err := f.uc.Recalculate(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, out.PreviousTotal.Equal(decimal.NewFromInt(999)))
	assert.True(t, out.NewTotal.Equal(decimal.NewFromInt(245000)), "2450 x 100")

	again, err := f.uc.Recalculate(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, again.PreviousTotal.Equal(again.NewTotal))
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibility and PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_OtherBuyer_Forbidden(t *testing.T) {
	f := newFixture()
	o := f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusCreated)
	intruder := f.seedBuyer(t)

	_, err := f.uc.Get(context.Background(), intruder, o.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestList_BuyerSeesOnlyOwnOrders(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	f.seedOrder(t, buyer, entity.OrderStatusCreated)
	f.seedOrder(t, f.seedBuyer(t), entity.OrderStatusCreated)

	own, err := f.uc.List(context.Background(), buyer, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, own.Items, 1)
	assert.Equal(t, buyer.UserID, own.Items[0].BuyerID)

	all, err := f.uc.List(context.Background(), adminCaller(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

func TestConfirmationPDF_OwnOrder(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	o := f.seedOrder(t, buyer, entity.OrderStatusConfirmed)

	raw, err := f.uc.ConfirmationPDF(context.Background(), buyer, o.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), raw)

	intruder := f.seedBuyer(t)
	_, err = f.uc.ConfirmationPDF(context.Background(), intruder, o.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
