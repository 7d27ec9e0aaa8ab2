package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shorturl-platform/userservice/internal/logger"
	"github.com/shorturl-platform/userservice/internal/secrets"
	"github.com/shorturl-platform/userservice/internal/service"
	"github.com/shorturl-platform/userservice/internal/token"
	"github.com/shorturl-platform/userservice/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn                  func(ctx context.Context, req models.SignupRequest) error
	loginFn                   func(ctx context.Context, req models.LoginRequest) (models.User, string, error)
	adminTokenFn              func(ctx context.Context) (string, error)
	getUserFn                 func(ctx context.Context, caller models.Identity, username string) (models.User, error)
	getAllUsersFn             func(ctx context.Context, caller models.Identity) ([]models.User, error)
	changePasswordFn          func(ctx context.Context, caller models.Identity, req models.ChangePasswordRequest) error
	deleteUserFn              func(ctx context.Context, caller models.Identity, username string) error
	deleteAllUsersFn          func(ctx context.Context, caller models.Identity) error
	initializeRepositoryFn    func(ctx context.Context) error
	setSimulateExpiredTokenFn func(ctx context.Context, caller models.Identity, enabled bool) error
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, string, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) AdminToken(ctx context.Context) (string, error) {
	return m.adminTokenFn(ctx)
}

func (m *mockAuthService) GetUser(ctx context.Context, caller models.Identity, username string) (models.User, error) {
	return m.getUserFn(ctx, caller, username)
}

func (m *mockAuthService) GetAllUsers(ctx context.Context, caller models.Identity) ([]models.User, error) {
	return m.getAllUsersFn(ctx, caller)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, caller models.Identity, req models.ChangePasswordRequest) error {
	return m.changePasswordFn(ctx, caller, req)
}

func (m *mockAuthService) DeleteUser(ctx context.Context, caller models.Identity, username string) error {
	return m.deleteUserFn(ctx, caller, username)
}

func (m *mockAuthService) DeleteAllUsers(ctx context.Context, caller models.Identity) error {
	return m.deleteAllUsersFn(ctx, caller)
}

func (m *mockAuthService) InitializeRepository(ctx context.Context) error {
	return m.initializeRepositoryFn(ctx)
}

func (m *mockAuthService) SetSimulateExpiredToken(ctx context.Context, caller models.Identity, enabled bool) error {
	return m.setSimulateExpiredTokenFn(ctx, caller, enabled)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testAdminUsername = "admin"
	testAdminPassword = "admin-pa55"
)

// newTestHandler builds a Handler with the given AuthService mock, a real
// token manager, and static admin secrets.
func newTestHandler(t *testing.T, auth service.AuthService) (*Handler, *token.Manager) {
	t.Helper()

	tokens := token.NewManager("unit-test-secret", time.Hour)
	provider := secrets.NewStaticProvider(testAdminUsername, testAdminPassword, "unit-test-secret", time.Hour, "users-table")
	h := NewHandler(service.NewServices(auth), tokens, provider, logger.Nop())

	return h, tokens
}

// serve routes req through the full middleware-wrapped router and returns
// the recorded response.
func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// bearerToken issues a token for the given identity from the handler's own
// manager.
func bearerToken(t *testing.T, tokens *token.Manager, username string, role models.Role) string {
	t.Helper()
	signed, err := tokens.Issue(username, role)
	require.NoError(t, err)
	return "Bearer " + signed
}

// jsonRequest builds a request with a JSON string body.
func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return httptest.NewRequest(method, target, reader)
}

// decodeStatus unmarshals the status envelope from the response body.
func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) models.StatusResponse {
	t.Helper()
	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
