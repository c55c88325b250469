package rfq_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/application/rfq"
	"github.com/jobforge/jobwork-api/internal/application/usecase"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/infrastructure/memory"
)

// fixture wires the lifecycle engine against the in-memory store and keeps
// the raw repositories around for seeding and assertions.
type fixture struct {
	uc            *rfq.UseCase
	users         *memory.UserRepo
	companies     *memory.CompanyRepo
	profiles      *memory.SupplierProfileRepo
	rfqs          *memory.RFQRepo
	invites       *memory.InviteRepo
	quotes        *memory.QuoteRepo
	offers        *memory.OfferRepo
	orders        *memory.OrderRepo
	notifications *memory.NotificationRepo
}

func newFixture() *fixture {
	store := memory.NewStore()
	f := &fixture{
		users:         memory.NewUserRepository(store),
		companies:     memory.NewCompanyRepository(store),
		profiles:      memory.NewSupplierProfileRepository(store),
		rfqs:          memory.NewRFQRepository(store),
		invites:       memory.NewInviteRepository(store),
		quotes:        memory.NewQuoteRepository(store),
		offers:        memory.NewOfferRepository(store),
		orders:        memory.NewOrderRepository(store),
		notifications: memory.NewNotificationRepository(store),
	}
	notifier := usecase.NewNotificationUseCase(f.notifications)
	f.uc = rfq.NewUseCase(
		f.rfqs, f.invites, f.quotes, f.offers, f.orders,
		f.users, f.profiles, notifier, memory.NewTxRunner(store),
	)
	return f
}

func (f *fixture) seedUser(t *testing.T, role, companyID string) dto.Caller {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:        uuid.New().String(),
		Email:     uuid.New().String() + "@example.com",
		Role:      role,
		CompanyID: companyID,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	u.Name = u.Email
	require.NoError(t, f.users.Create(context.Background(), u))
	return dto.Caller{UserID: u.ID, CompanyID: u.CompanyID, Role: u.Role}
}

func (f *fixture) seedBuyer(t *testing.T) dto.Caller {
	t.Helper()
	return f.seedUser(t, entity.RoleBuyer, "")
}

func (f *fixture) seedAdmin(t *testing.T) dto.Caller {
	t.Helper()
	return f.seedUser(t, entity.RoleAdmin, "")
}

// seedSupplier creates a supplier user with a company and a supplier
// profile, the shape required to be invitable.
func (f *fixture) seedSupplier(t *testing.T) dto.Caller {
	t.Helper()
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      "Supplier Co",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.companies.Create(context.Background(), company))
	caller := f.seedUser(t, entity.RoleSupplier, company.ID)
	profile := &entity.SupplierProfile{
		ID:             uuid.New().String(),
		CompanyID:      company.ID,
		Capabilities:   []string{"cnc_machining"},
		VerifiedStatus: entity.VerifiedBronze,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, f.profiles.Create(context.Background(), profile))
	return caller
}

func (f *fixture) seedRFQ(t *testing.T, buyerID, status string) *entity.RFQ {
	t.Helper()
	now := time.Now()
	r := &entity.RFQ{
		ID:        uuid.New().String(),
		BuyerID:   buyerID,
		Title:     "Machined brackets",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.rfqs.Create(context.Background(), r))
	return r
}

func (f *fixture) seedInvite(t *testing.T, rfqID, supplierID, status string, deadline time.Time) *entity.SupplierInvite {
	t.Helper()
	now := time.Now()
	inv := &entity.SupplierInvite{
		ID:               uuid.New().String(),
		RFQID:            rfqID,
		SupplierID:       supplierID,
		Status:           status,
		ResponseDeadline: deadline,
		CreatedBy:        "admin-seed",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, f.invites.Create(context.Background(), inv))
	return inv
}

func (f *fixture) rfqStatus(t *testing.T, id string) string {
	t.Helper()
	r, err := f.rfqs.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, r)
	return r.Status
}

func (f *fixture) notificationCount(t *testing.T, userID string) int {
	t.Helper()
	list, err := f.notifications.ListByUser(context.Background(), userID, 100, 0)
	require.NoError(t, err)
	return len(list)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Submit
// ──────────────────────────────────────────────────────────────────────────────

// Ownership always comes from the caller, never from the request body.
func TestCreate_BuyerIDTakenFromCaller(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)

	out, err := f.uc.Create(context.Background(), buyer, dto.CreateRFQRequest{Title: "500 shafts"})
	require.NoError(t, err)
	assert.Equal(t, buyer.UserID, out.BuyerID)
	assert.Equal(t, entity.RFQStatusDraft, out.Status)
}

func TestCreate_SubmitFlag_SkipsDraft(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)

	out, err := f.uc.Create(context.Background(), buyer, dto.CreateRFQRequest{Title: "500 shafts", Submit: true})
	require.NoError(t, err)
	assert.Equal(t, entity.RFQStatusSubmitted, out.Status)
}

func TestCreate_EmptyTitle_Rejected(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)

	_, err := f.uc.Create(context.Background(), buyer, dto.CreateRFQRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_NonOwner_Forbidden(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	other := f.seedBuyer(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusDraft)

	_, err := f.uc.Submit(context.Background(), other, r.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSubmit_OnlyFromDraft(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusSubmitted)

	_, err := f.uc.Submit(context.Background(), buyer, r.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// InviteSuppliers
// ──────────────────────────────────────────────────────────────────────────────

func TestInviteSuppliers_CreatesInvitesAndMovesRFQ(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusSubmitted)

	out, err := f.uc.InviteSuppliers(context.Background(), admin, dto.InviteSuppliersRequest{
		RFQID:       r.ID,
		SupplierIDs: []string{supplier.UserID},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, entity.InviteStatusInvited, out[0].Status)
	assert.WithinDuration(t, time.Now().Add(entity.InviteResponseWindow), out[0].ResponseDeadline, 5*time.Second)
	assert.Equal(t, entity.RFQStatusInvited, f.rfqStatus(t, r.ID))
	assert.Equal(t, 1, f.notificationCount(t, supplier.UserID))
}

func TestInviteSuppliers_NonSupplierTarget_Rejected(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	buyer := f.seedBuyer(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusSubmitted)

	_, err := f.uc.InviteSuppliers(context.Background(), admin, dto.InviteSuppliersRequest{
		RFQID:       r.ID,
		SupplierIDs: []string{buyer.UserID},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInviteSuppliers_SupplierWithoutProfile_Rejected(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	buyer := f.seedBuyer(t)
	bare := f.seedUser(t, entity.RoleSupplier, uuid.New().String()) // company, no profile
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusSubmitted)

	_, err := f.uc.InviteSuppliers(context.Background(), admin, dto.InviteSuppliersRequest{
		RFQID:       r.ID,
		SupplierIDs: []string{bare.UserID},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInviteSuppliers_DuplicateInvite_Conflict(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusSubmitted)

	_, err := f.uc.InviteSuppliers(context.Background(), admin, dto.InviteSuppliersRequest{
		RFQID:       r.ID,
		SupplierIDs: []string{supplier.UserID},
	})
	require.NoError(t, err)

	_, err = f.uc.InviteSuppliers(context.Background(), admin, dto.InviteSuppliersRequest{
		RFQID:       r.ID,
		SupplierIDs: []string{supplier.UserID},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestInviteSuppliers_DraftRFQ_Rejected(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusDraft)

	_, err := f.uc.InviteSuppliers(context.Background(), admin, dto.InviteSuppliersRequest{
		RFQID:       r.ID,
		SupplierIDs: []string{supplier.UserID},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// SubmitQuote
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitQuote_FlipsInviteAndRFQ(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusInvited)
	inv := f.seedInvite(t, r.ID, supplier.UserID, entity.InviteStatusInvited, time.Now().Add(time.Hour))

	out, err := f.uc.SubmitQuote(context.Background(), supplier, dto.SubmitQuoteRequest{
		RFQID:     r.ID,
		UnitPrice: decimal.NewFromInt(120),
		Quantity:  500,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusSubmitted, out.Status)
	assert.Equal(t, inv.ID, out.InviteID)
	assert.Equal(t, supplier.UserID, out.SupplierID)

	stored, err := f.invites.GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InviteStatusResponded, stored.Status)
	assert.Equal(t, entity.RFQStatusQuoted, f.rfqStatus(t, r.ID))
}

func TestSubmitQuote_WithoutInvite_Forbidden(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusInvited)

	_, err := f.uc.SubmitQuote(context.Background(), supplier, dto.SubmitQuoteRequest{
		RFQID:     r.ID,
		UnitPrice: decimal.NewFromInt(120),
		Quantity:  500,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSubmitQuote_DeclinedInvite_NotOpen(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusInvited)
	f.seedInvite(t, r.ID, supplier.UserID, entity.InviteStatusDeclined, time.Now().Add(time.Hour))

	_, err := f.uc.SubmitQuote(context.Background(), supplier, dto.SubmitQuoteRequest{
		RFQID:     r.ID,
		UnitPrice: decimal.NewFromInt(120),
		Quantity:  500,
	})
	assert.ErrorIs(t, err, domain.ErrInviteNotOpen)
}

func TestSubmitQuote_ExpiredDeadline_NotOpen(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusInvited)
	f.seedInvite(t, r.ID, supplier.UserID, entity.InviteStatusInvited, time.Now().Add(-time.Minute))

	_, err := f.uc.SubmitQuote(context.Background(), supplier, dto.SubmitQuoteRequest{
		RFQID:     r.ID,
		UnitPrice: decimal.NewFromInt(120),
		Quantity:  500,
	})
	assert.ErrorIs(t, err, domain.ErrInviteNotOpen)
}

func TestSubmitQuote_NonPositiveInput_Rejected(t *testing.T) {
	f := newFixture()
	supplier := f.seedSupplier(t)

	_, err := f.uc.SubmitQuote(context.Background(), supplier, dto.SubmitQuoteRequest{
		RFQID:     uuid.New().String(),
		UnitPrice: decimal.NewFromInt(120),
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.SubmitQuote(context.Background(), supplier, dto.SubmitQuoteRequest{
		RFQID:     uuid.New().String(),
		UnitPrice: decimal.Zero,
		Quantity:  10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeclineInvite
// ──────────────────────────────────────────────────────────────────────────────

func TestDeclineInvite_OwnOpenInvite(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusInvited)
	inv := f.seedInvite(t, r.ID, supplier.UserID, entity.InviteStatusInvited, time.Now().Add(time.Hour))

	out, err := f.uc.DeclineInvite(context.Background(), supplier, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InviteStatusDeclined, out.Status)
}

func TestDeclineInvite_OtherSuppliers_Forbidden(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	intruder := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusInvited)
	inv := f.seedInvite(t, r.ID, supplier.UserID, entity.InviteStatusInvited, time.Now().Add(time.Hour))

	_, err := f.uc.DeclineInvite(context.Background(), intruder, inv.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeclineInvite_AlreadyResponded_NotOpen(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusQuoted)
	inv := f.seedInvite(t, r.ID, supplier.UserID, entity.InviteStatusResponded, time.Now().Add(time.Hour))

	_, err := f.uc.DeclineInvite(context.Background(), supplier, inv.ID)
	assert.ErrorIs(t, err, domain.ErrInviteNotOpen)
}

// ──────────────────────────────────────────────────────────────────────────────
// Offers: compose, publish, accept
// ──────────────────────────────────────────────────────────────────────────────

// quotedRFQ seeds a buyer, a supplier, a quoted RFQ and one submitted quote.
func quotedRFQ(t *testing.T, f *fixture) (buyer dto.Caller, r *entity.RFQ, quote *entity.Quote) {
	t.Helper()
	buyer = f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r = f.seedRFQ(t, buyer.UserID, entity.RFQStatusQuoted)
	inv := f.seedInvite(t, r.ID, supplier.UserID, entity.InviteStatusResponded, time.Now().Add(time.Hour))
	now := time.Now()
	quote = &entity.Quote{
		ID:         uuid.New().String(),
		RFQID:      r.ID,
		InviteID:   inv.ID,
		SupplierID: supplier.UserID,
		UnitPrice:  decimal.NewFromInt(100),
		Quantity:   500,
		Status:     entity.QuoteStatusSubmitted,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, f.quotes.Create(context.Background(), quote))
	return buyer, r, quote
}

func composeReq(r *entity.RFQ, quoteIDs ...string) dto.ComposeOfferRequest {
	return dto.ComposeOfferRequest{
		RFQID:          r.ID,
		QuoteIDs:       quoteIDs,
		Title:          "Curated: machined brackets",
		UnitPrice:      decimal.NewFromInt(2450),
		Quantity:       100,
		LeadTimeDays:   30,
		AdvancePercent: decimal.NewFromInt(30),
	}
}

func TestComposeOffer_DraftUntilPublished(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	buyer, r, quote := quotedRFQ(t, f)

	out, err := f.uc.ComposeOffer(context.Background(), admin, composeReq(r, quote.ID))
	require.NoError(t, err)
	assert.Nil(t, out.PublishedAt)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(245000)))

	// The draft is invisible to the buyer.
	list, err := f.uc.ListOffers(context.Background(), buyer, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestComposeOffer_QuoteFromAnotherRFQ_Rejected(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	_, r, _ := quotedRFQ(t, f)
	_, _, foreign := quotedRFQ(t, f)

	_, err := f.uc.ComposeOffer(context.Background(), admin, composeReq(r, foreign.ID))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComposeOffer_AdvancePercentBounds(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	_, r, quote := quotedRFQ(t, f)

	req := composeReq(r, quote.ID)
	req.AdvancePercent = decimal.NewFromInt(101)
	_, err := f.uc.ComposeOffer(context.Background(), admin, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComposeOffer_UnquotedRFQ_Rejected(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	buyer := f.seedBuyer(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusSubmitted)

	_, err := f.uc.ComposeOffer(context.Background(), admin, composeReq(r, uuid.New().String()))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPublishOffer_MakesOfferVisibleAndNotifiesBuyer(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	buyer, r, quote := quotedRFQ(t, f)

	draft, err := f.uc.ComposeOffer(context.Background(), admin, composeReq(r, quote.ID))
	require.NoError(t, err)

	out, err := f.uc.PublishOffer(context.Background(), draft.ID)
	require.NoError(t, err)
	require.NotNil(t, out.PublishedAt)
	assert.Equal(t, entity.RFQStatusOffersPublished, f.rfqStatus(t, r.ID))
	assert.Equal(t, 1, f.notificationCount(t, buyer.UserID))

	list, err := f.uc.ListOffers(context.Background(), buyer, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, draft.ID, list.Items[0].ID)
}

func TestPublishOffer_Twice_Conflict(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	_, r, quote := quotedRFQ(t, f)

	draft, err := f.uc.ComposeOffer(context.Background(), admin, composeReq(r, quote.ID))
	require.NoError(t, err)
	_, err = f.uc.PublishOffer(context.Background(), draft.ID)
	require.NoError(t, err)

	_, err = f.uc.PublishOffer(context.Background(), draft.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyPublished)
}

func TestAcceptOffer_Unpublished_Rejected(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	buyer, r, quote := quotedRFQ(t, f)

	draft, err := f.uc.ComposeOffer(context.Background(), admin, composeReq(r, quote.ID))
	require.NoError(t, err)

	_, err = f.uc.AcceptOffer(context.Background(), buyer, draft.ID)
	assert.ErrorIs(t, err, domain.ErrNotPublished)
}

func TestAcceptOffer_WrongBuyer_Forbidden(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	_, r, quote := quotedRFQ(t, f)
	intruder := f.seedBuyer(t)

	draft, err := f.uc.ComposeOffer(context.Background(), admin, composeReq(r, quote.ID))
	require.NoError(t, err)
	_, err = f.uc.PublishOffer(context.Background(), draft.ID)
	require.NoError(t, err)

	_, err = f.uc.AcceptOffer(context.Background(), intruder, draft.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Accepting creates the order with amounts derived from the offer and
// settles every quote on the RFQ: winners accepted, siblings rejected.
func TestAcceptOffer_CreatesOrderAndSettlesQuotes(t *testing.T) {
	f := newFixture()
	admin := f.seedAdmin(t)
	buyer, r, winner := quotedRFQ(t, f)

	// A sibling quote from a second supplier, not part of the offer.
	other := f.seedSupplier(t)
	otherInv := f.seedInvite(t, r.ID, other.UserID, entity.InviteStatusResponded, time.Now().Add(time.Hour))
	now := time.Now()
	loser := &entity.Quote{
		ID:         uuid.New().String(),
		RFQID:      r.ID,
		InviteID:   otherInv.ID,
		SupplierID: other.UserID,
		UnitPrice:  decimal.NewFromInt(130),
		Quantity:   500,
		Status:     entity.QuoteStatusSubmitted,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, f.quotes.Create(context.Background(), loser))

	draft, err := f.uc.ComposeOffer(context.Background(), admin, composeReq(r, winner.ID))
	require.NoError(t, err)
	_, err = f.uc.PublishOffer(context.Background(), draft.ID)
	require.NoError(t, err)

	order, err := f.uc.AcceptOffer(context.Background(), buyer, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCreated, order.Status)
	assert.Equal(t, buyer.UserID, order.BuyerID)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(245000)), "total = unit price x quantity")
	assert.True(t, order.AdvancePayment.Equal(decimal.NewFromInt(73500)), "advance = 30 percent of total")
	assert.Equal(t, entity.RFQStatusAccepted, f.rfqStatus(t, r.ID))

	storedWinner, err := f.quotes.GetByID(context.Background(), winner.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusAccepted, storedWinner.Status)
	storedLoser, err := f.quotes.GetByID(context.Background(), loser.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusRejected, storedLoser.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Role-scoped visibility
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_SupplierWithoutInvite_Forbidden(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusInvited)

	_, err := f.uc.Get(context.Background(), supplier, r.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGet_InvitedSupplier_Allowed(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusInvited)
	f.seedInvite(t, r.ID, supplier.UserID, entity.InviteStatusInvited, time.Now().Add(time.Hour))

	out, err := f.uc.Get(context.Background(), supplier, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, out.ID)
}

func TestGet_OtherBuyer_Forbidden(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	other := f.seedBuyer(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusDraft)

	_, err := f.uc.Get(context.Background(), other, r.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestList_ScopedByRole(t *testing.T) {
	f := newFixture()
	buyerA := f.seedBuyer(t)
	buyerB := f.seedBuyer(t)
	supplier := f.seedSupplier(t)
	admin := f.seedAdmin(t)

	ra := f.seedRFQ(t, buyerA.UserID, entity.RFQStatusSubmitted)
	f.seedRFQ(t, buyerB.UserID, entity.RFQStatusSubmitted)
	f.seedInvite(t, ra.ID, supplier.UserID, entity.InviteStatusInvited, time.Now().Add(time.Hour))

	own, err := f.uc.List(context.Background(), buyerA, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, own.Items, 1)
	assert.Equal(t, ra.ID, own.Items[0].ID)

	invited, err := f.uc.List(context.Background(), supplier, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, invited.Items, 1)
	assert.Equal(t, ra.ID, invited.Items[0].ID)

	all, err := f.uc.List(context.Background(), admin, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel / OverrideStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_TerminalRFQ_Rejected(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusCompleted)

	_, err := f.uc.Cancel(context.Background(), buyer, r.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOverrideStatus_UnknownStatus_Rejected(t *testing.T) {
	f := newFixture()
	buyer := f.seedBuyer(t)
	r := f.seedRFQ(t, buyer.UserID, entity.RFQStatusSubmitted)

	_, err := f.uc.OverrideStatus(context.Background(), r.ID, "warp_speed")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
