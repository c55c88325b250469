package rfq

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

// TxRepos are the repositories bound to a single transaction.
type TxRepos struct {
	RFQs    repository.RFQRepository
	Invites repository.InviteRepository
	Quotes  repository.QuoteRepository
	Offers  repository.OfferRepository
	Orders  repository.OrderRepository
}

// TxRunner runs fn atomically. SubmitQuote and AcceptOffer go through here
// so the invite/offer check and the resulting writes cannot race.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}

// Notifier delivers lifecycle notifications. Kept as a minimal interface so
// the engine does not depend on the notification use case directly.
type Notifier interface {
	Notify(ctx context.Context, userID, kind, title, body string) error
}
