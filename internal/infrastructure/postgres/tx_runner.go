package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jobforge/jobwork-api/internal/application/rfq"
)

var _ rfq.TxRunner = (*TxRunner)(nil)

// TxRunner runs a callback inside one database transaction, handing it
// repositories bound to that transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, invokes fn with tx-bound repositories and
// commits. Any error from fn rolls the whole thing back.
func (t *TxRunner) Run(ctx context.Context, fn func(r rfq.TxRepos) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	repos := rfq.TxRepos{
		RFQs:    NewRFQRepository(tx),
		Invites: NewInviteRepository(tx),
		Quotes:  NewQuoteRepository(tx),
		Offers:  NewOfferRepository(tx),
		Orders:  NewOrderRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
