package entity

import "time"

// Valid roles for User. Role is fixed at registration; there is no
// self-promotion path, admins are provisioned out of band.
const (
	RoleBuyer    = "buyer"
	RoleSupplier = "supplier"
	RoleAdmin    = "admin"
)

// RegistrableRole reports whether a role may be chosen at registration.
func RegistrableRole(role string) bool {
	return role == RoleBuyer || role == RoleSupplier
}

// User represents an account in the marketplace. A user optionally belongs
// to one Company (buyers and suppliers normally do, admins do not).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Name         string
	Role         string // buyer, supplier, admin
	CompanyID    string // empty = no company attached
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
