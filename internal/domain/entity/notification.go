package entity

import "time"

// Notification kinds emitted by the lifecycle engine.
const (
	NotificationInvite         = "invite"
	NotificationQuoteSubmitted = "quote_submitted"
	NotificationOfferPublished = "offer_published"
	NotificationOrderStatus    = "order_status"
)

// Notification is a per-user message with read state.
type Notification struct {
	ID        string
	UserID    string
	Kind      string
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}
