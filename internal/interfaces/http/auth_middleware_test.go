package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/infrastructure/memory"
	apphttp "github.com/jobforge/jobwork-api/internal/interfaces/http"
	pkgjwt "github.com/jobforge/jobwork-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "jobforge-test"
	testExpMin    = 60
)

// seedUser inserts a user straight into the store and returns it.
func seedUser(t *testing.T, users *memory.UserRepo, id, role, status string) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:        id,
		Email:     id + "@example.com",
		Name:      id,
		Role:      role,
		CompanyID: "company-" + id,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

// buildTestApp builds a minimal Fiber app with:
//   - AuthMiddleware resolving the caller from the store
//   - RequireRole (when roles are given) authorizing the access
//   - a dummy handler echoing the resolved locals
func buildTestApp(users *memory.UserRepo, allowLegacy bool, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{
		apphttp.AuthMiddleware(apphttp.AuthConfig{
			JWTSecret:         testJWTSecret,
			Users:             users,
			AllowLegacyHeader: allowLegacy,
		}),
	}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"company_id": apphttp.GetCompanyID(c),
			"role":       apphttp.GetRole(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

// tokenFor signs a token for the given identity.
func tokenFor(t *testing.T, userID, role string, expMinutes int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, "company-"+userID, role, testIssuer, expMinutes)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doRequest fires GET /protected with the given headers.
func doRequest(t *testing.T, app *fiber.App, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware: caller resolution from the store
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ValidToken_LoadsStoredIdentity(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	u := seedUser(t, users, "buyer-1", entity.RoleBuyer, "active")
	app := buildTestApp(users, false)

	resp := doRequest(t, app, map[string]string{"Authorization": tokenFor(t, u.ID, u.Role, testExpMin)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, u.ID, body["user_id"])
	assert.Equal(t, u.CompanyID, body["company_id"])
	assert.Equal(t, entity.RoleBuyer, body["role"])
}

// A tampered or stale role claim never grants access: the stored role wins.
func TestAuthMiddleware_StoredRoleOverridesTokenClaim(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	u := seedUser(t, users, "buyer-2", entity.RoleBuyer, "active")
	app := buildTestApp(users, false, entity.RoleAdmin)

	// Token claims admin; the stored record says buyer.
	resp := doRequest(t, app, map[string]string{"Authorization": tokenFor(t, u.ID, entity.RoleAdmin, testExpMin)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "FORBIDDEN")
}

func TestAuthMiddleware_UnknownUser_Returns401(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	app := buildTestApp(users, false)

	resp := doRequest(t, app, map[string]string{"Authorization": tokenFor(t, "ghost", entity.RoleBuyer, testExpMin)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "UNKNOWN_USER")
}

func TestAuthMiddleware_SuspendedUser_Returns403(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	u := seedUser(t, users, "supplier-1", entity.RoleSupplier, "suspended")
	app := buildTestApp(users, false)

	resp := doRequest(t, app, map[string]string{"Authorization": tokenFor(t, u.ID, u.Role, testExpMin)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredToken_Returns401(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	u := seedUser(t, users, "buyer-3", entity.RoleBuyer, "active")
	app := buildTestApp(users, false)

	resp := doRequest(t, app, map[string]string{"Authorization": tokenFor(t, u.ID, u.Role, -1)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "TOKEN_EXPIRED")
}

func TestAuthMiddleware_MissingHeader_Returns401(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	app := buildTestApp(users, false)

	resp := doRequest(t, app, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "MISSING_TOKEN")
}

func TestAuthMiddleware_MalformedToken_Returns401(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	app := buildTestApp(users, false)

	resp := doRequest(t, app, map[string]string{"Authorization": "Bearer not.a.token"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INVALID_TOKEN")
}

func TestAuthMiddleware_WrongSecret_Returns401(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	u := seedUser(t, users, "buyer-4", entity.RoleBuyer, "active")
	app := buildTestApp(users, false)

	tok, err := pkgjwt.Generate("a-completely-different-secret", u.ID, u.CompanyID, u.Role, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, map[string]string{"Authorization": "Bearer " + tok})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Legacy X-User-Email header
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_LegacyHeader_HonoredWhenEnabled(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	u := seedUser(t, users, "buyer-5", entity.RoleBuyer, "active")
	app := buildTestApp(users, true)

	resp := doRequest(t, app, map[string]string{"X-User-Email": u.Email})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, u.ID, body["user_id"])
}

func TestAuthMiddleware_LegacyHeader_IgnoredWhenDisabled(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	u := seedUser(t, users, "buyer-6", entity.RoleBuyer, "active")
	app := buildTestApp(users, false)

	resp := doRequest(t, app, map[string]string{"X-User-Email": u.Email})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "MISSING_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AllowedRole_Passes(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	u := seedUser(t, users, "admin-1", entity.RoleAdmin, "active")
	app := buildTestApp(users, false, entity.RoleAdmin)

	resp := doRequest(t, app, map[string]string{"Authorization": tokenFor(t, u.ID, u.Role, testExpMin)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_MultiRole_Passes(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	u := seedUser(t, users, "buyer-7", entity.RoleBuyer, "active")
	app := buildTestApp(users, false, entity.RoleBuyer, entity.RoleAdmin)

	resp := doRequest(t, app, map[string]string{"Authorization": tokenFor(t, u.ID, u.Role, testExpMin)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_WrongRole_Returns403(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	u := seedUser(t, users, "supplier-2", entity.RoleSupplier, "active")
	app := buildTestApp(users, false, entity.RoleAdmin)

	resp := doRequest(t, app, map[string]string{"Authorization": tokenFor(t, u.ID, u.Role, testExpMin)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT pkg: generate/parse round trip
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user-1", "company-1", entity.RoleSupplier, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, entity.RoleSupplier, claims.Role)
}

func TestJWT_Expired_ReturnsErrExpired(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user-1", "", entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestJWT_WrongSecret_ReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user-1", "", entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("another-secret-entirely", tok)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, pkgjwt.ErrExpired)
}
