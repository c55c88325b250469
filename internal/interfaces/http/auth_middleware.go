package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/pkg/jwt"
)

// Locals keys set by the auth middleware.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
	LocalRole      = "role"
)

// UserLoader resolves the stored user record during authentication.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// AuthConfig wires the auth middleware.
type AuthConfig struct {
	JWTSecret string
	Users     UserLoader
	// AllowLegacyHeader accepts a plaintext X-User-Email header instead of a
	// Bearer token. Development-only escape hatch, off by default.
	AllowLegacyHeader bool
}

// AuthMiddleware authenticates the request and loads the caller identity
// into c.Locals. The role and company always come from the stored user
// record, not from token claims: a stale or tampered role claim never
// grants access.
func AuthMiddleware(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			if cfg.AllowLegacyHeader {
				if email := strings.TrimSpace(c.Get("X-User-Email")); email != "" {
					return loadUserByEmail(c, cfg, email)
				}
			}
			return unauthorized(c, "MISSING_TOKEN", "Authorization header required")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "INVALID_TOKEN", "format: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "MISSING_TOKEN", "empty token")
		}

		claims, err := jwt.Parse(cfg.JWTSecret, tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpired) {
				return unauthorized(c, "TOKEN_EXPIRED", "token expired")
			}
			return unauthorized(c, "INVALID_TOKEN", "invalid token")
		}
		return loadUser(c, cfg, claims.UserID)
	}
}

func loadUser(c *fiber.Ctx, cfg AuthConfig, userID string) error {
	user, err := cfg.Users.GetByID(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return admitUser(c, user)
}

func loadUserByEmail(c *fiber.Ctx, cfg AuthConfig, email string) error {
	user, err := cfg.Users.GetByEmail(c.UserContext(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return admitUser(c, user)
}

func admitUser(c *fiber.Ctx, user *entity.User) error {
	if user == nil {
		return unauthorized(c, "UNKNOWN_USER", "user no longer exists")
	}
	if user.Status != "active" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "account inactive or suspended"})
	}
	c.Locals(LocalUserID, user.ID)
	c.Locals(LocalCompanyID, user.CompanyID)
	c.Locals(LocalRole, user.Role)
	return c.Next()
}

func unauthorized(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// RequireRole authorizes the request against the caller's stored role.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return unauthorized(c, "MISSING_ROLE", "no role resolved for caller")
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "role not allowed for this operation"})
	}
}

// GetUserID returns the caller's user ID (after the auth middleware).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetCompanyID returns the caller's company ID (after the auth middleware).
func GetCompanyID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalCompanyID).(string)
	return s
}

// GetRole returns the caller's role (after the auth middleware).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// Caller assembles the resolved identity for use case calls.
func Caller(c *fiber.Ctx) dto.Caller {
	return dto.Caller{
		UserID:    GetUserID(c),
		CompanyID: GetCompanyID(c),
		Role:      GetRole(c),
	}
}
