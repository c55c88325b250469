package dto

import "time"

// RegisterCompany optional company details supplied at registration.
type RegisterCompany struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	RegistrationNo string `json:"registration_no"`
	TaxID          string `json:"tax_id"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Country        string `json:"country"`
}

// RegisterRequest registration input. Role is restricted to buyer/supplier;
// admin accounts are never self-service.
type RegisterRequest struct {
	Email    string           `json:"email" validate:"required,email"`
	Password string           `json:"password" validate:"required,min=8"`
	Name     string           `json:"name" validate:"omitempty,max=200"`
	Role     string           `json:"role" validate:"required,oneof=buyer supplier"`
	Company  *RegisterCompany `json:"company" validate:"omitempty"`
}

// UserResponse user output (no password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CompanyID string    `json:"company_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest login input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse login output with the signed token.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
