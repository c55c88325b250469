package order

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// Notifier delivers order status notifications.
type Notifier interface {
	Notify(ctx context.Context, userID, kind, title, body string) error
}

// PDFGenerator renders the order confirmation document.
type PDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, rfq *entity.RFQ, offer *entity.CuratedOffer, buyer *entity.User, updates []*entity.OrderUpdate) ([]byte, error)
}
