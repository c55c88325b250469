package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidRole        = errors.New("role must be buyer or supplier")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInviteNotOpen      = errors.New("invite is not open for quoting")
	ErrAlreadyPublished   = errors.New("offer is already published")
	ErrNotPublished       = errors.New("offer is not published")
	ErrFileTooLarge       = errors.New("file exceeds the size limit for its kind")
)
