package entity

import "time"

// Invite statuses.
const (
	InviteStatusInvited   = "invited"
	InviteStatusResponded = "responded"
	InviteStatusDeclined  = "declined"
)

// InviteResponseWindow is how long a supplier has to respond to an invite.
const InviteResponseWindow = 7 * 24 * time.Hour

// SupplierInvite authorizes one supplier to quote on one RFQ. Created by
// admin action only; submitting a quote flips the status to responded.
type SupplierInvite struct {
	ID               string
	RFQID            string
	SupplierID       string // user id of the invited supplier
	Status           string // invited, responded, declined
	ResponseDeadline time.Time
	CreatedBy        string // admin user id
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
