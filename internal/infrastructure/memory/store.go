// Package memory is an in-process implementation of the persistence ports,
// selected with STORE_DRIVER=memory. It backs local development and the
// application-layer tests; data does not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/jobforge/jobwork-api/internal/application/rfq"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// Store holds every table as a map guarded by one RWMutex. Repositories
// share the store and copy entities on the way in and out, so callers can
// never mutate stored state through a retained pointer.
type Store struct {
	mu sync.RWMutex

	users         map[string]*entity.User
	companies     map[string]*entity.Company
	profiles      map[string]*entity.SupplierProfile
	skus          map[string]*entity.SKU
	rfqs          map[string]*entity.RFQ
	invites       map[string]*entity.SupplierInvite
	quotes        map[string]*entity.Quote
	offers        map[string]*entity.CuratedOffer
	orders        map[string]*entity.Order
	orderUpdates  map[string][]*entity.OrderUpdate // keyed by order id
	documents     map[string]*entity.Document
	notifications map[string]*entity.Notification
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:         make(map[string]*entity.User),
		companies:     make(map[string]*entity.Company),
		profiles:      make(map[string]*entity.SupplierProfile),
		skus:          make(map[string]*entity.SKU),
		rfqs:          make(map[string]*entity.RFQ),
		invites:       make(map[string]*entity.SupplierInvite),
		quotes:        make(map[string]*entity.Quote),
		offers:        make(map[string]*entity.CuratedOffer),
		orders:        make(map[string]*entity.Order),
		orderUpdates:  make(map[string][]*entity.OrderUpdate),
		documents:     make(map[string]*entity.Document),
		notifications: make(map[string]*entity.Notification),
	}
}

var _ rfq.TxRunner = (*TxRunner)(nil)

// TxRunner satisfies the transactional port against the in-memory store.
// The callback runs against the live store with per-method locking only;
// single-process use makes the lost-update window acceptable here, and the
// PostgreSQL runner provides real atomicity in production.
type TxRunner struct {
	store *Store
}

// NewTxRunner builds the runner.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run invokes fn with store-bound repositories.
func (t *TxRunner) Run(_ context.Context, fn func(r rfq.TxRepos) error) error {
	return fn(rfq.TxRepos{
		RFQs:    NewRFQRepository(t.store),
		Invites: NewInviteRepository(t.store),
		Quotes:  NewQuoteRepository(t.store),
		Offers:  NewOfferRepository(t.store),
		Orders:  NewOrderRepository(t.store),
	})
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
