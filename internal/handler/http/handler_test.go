// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/service"
	"github.com/MKhiriev/go-member-portal/models"
)

const testCookieName = "App.Session"

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn              func(ctx context.Context, req models.LoginRequest) (service.LoginResult, error)
	loginWithTwoFactorFn func(ctx context.Context, userID, code string) (service.LoginResult, error)
	sendTwoFactorCodeFn  func(ctx context.Context, userID string) error
	verifyTwoFactorFn    func(ctx context.Context, userID, code string) error
	validateSessionFn    func(ctx context.Context, sessionID string) (models.Session, error)
	logoutFn             func(ctx context.Context, sessionID string) error
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (service.LoginResult, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) LoginWithTwoFactor(ctx context.Context, userID, code string) (service.LoginResult, error) {
	return m.loginWithTwoFactorFn(ctx, userID, code)
}

func (m *mockAuthService) SendTwoFactorCode(ctx context.Context, userID string) error {
	return m.sendTwoFactorCodeFn(ctx, userID)
}

func (m *mockAuthService) VerifyTwoFactorCode(ctx context.Context, userID, code string) error {
	return m.verifyTwoFactorFn(ctx, userID, code)
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID string) (models.Session, error) {
	return m.validateSessionFn(ctx, sessionID)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.logoutFn(ctx, sessionID)
}

// mockAccountService implements service.AccountService for unit tests.
type mockAccountService struct {
	registerFn           func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	registerAdminFn      func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	forgotPasswordFn     func(ctx context.Context, email string) error
	resetPasswordFn      func(ctx context.Context, req models.ResetPasswordRequest) error
	confirmEmailFn       func(ctx context.Context, userID, token string) error
	resendConfirmationFn func(ctx context.Context, email string) error
	changePasswordFn     func(ctx context.Context, userID string, req models.ChangePasswordRequest) error
}

func (m *mockAccountService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAccountService) RegisterAdmin(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerAdminFn(ctx, req)
}

func (m *mockAccountService) EnsureAdminAccount(_ context.Context) error {
	return nil
}

func (m *mockAccountService) ForgotPassword(ctx context.Context, email string) error {
	return m.forgotPasswordFn(ctx, email)
}

func (m *mockAccountService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return m.resetPasswordFn(ctx, req)
}

func (m *mockAccountService) ConfirmEmail(ctx context.Context, userID, token string) error {
	return m.confirmEmailFn(ctx, userID, token)
}

func (m *mockAccountService) ResendConfirmationEmail(ctx context.Context, email string) error {
	return m.resendConfirmationFn(ctx, email)
}

func (m *mockAccountService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	return m.changePasswordFn(ctx, userID, req)
}

// mockProfileService implements service.ProfileService for unit tests.
type mockProfileService struct {
	infoFn          func(ctx context.Context, userID string) (models.User, error)
	myPageFn        func(ctx context.Context, userID string) (models.User, []models.InstallHistoryRecord, error)
	updateProfileFn func(ctx context.Context, userID string, req models.UpdateProfileRequest) error
	setTwoFactorFn  func(ctx context.Context, userID string, enabled bool) error
}

func (m *mockProfileService) Info(ctx context.Context, userID string) (models.User, error) {
	return m.infoFn(ctx, userID)
}

func (m *mockProfileService) MyPage(ctx context.Context, userID string) (models.User, []models.InstallHistoryRecord, error) {
	return m.myPageFn(ctx, userID)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) error {
	return m.updateProfileFn(ctx, userID, req)
}

func (m *mockProfileService) SetTwoFactor(ctx context.Context, userID string, enabled bool) error {
	return m.setTwoFactorFn(ctx, userID, enabled)
}

// mockDownloadService implements service.DownloadService for unit tests.
type mockDownloadService struct {
	windowsInstallerFn func(ctx context.Context, userID string) (io.ReadCloser, string, error)
}

func (m *mockDownloadService) WindowsInstaller(ctx context.Context, userID string) (io.ReadCloser, string, error) {
	return m.windowsInstallerFn(ctx, userID)
}

// mockContactService implements service.ContactService for unit tests.
type mockContactService struct {
	relayFn func(ctx context.Context, req models.ContactRequest) error
}

func (m *mockContactService) Relay(ctx context.Context, req models.ContactRequest) error {
	return m.relayFn(ctx, req)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given mocked services.
// Nil service fields are allowed for routes a test never touches.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	cfg := config.Auth{SessionCookieName: testCookieName}
	return NewHandler(svcs, cfg, logger.Nop())
}

// validSessionAuth returns an AuthService mock whose ValidateSession accepts
// the given session id on behalf of the given user.
func validSessionAuth(sessionID, userID string) *mockAuthService {
	return &mockAuthService{
		validateSessionFn: func(_ context.Context, gotID string) (models.Session, error) {
			if gotID != sessionID {
				return models.Session{}, service.ErrSessionNotFound
			}
			return models.Session{
				SessionID: sessionID,
				UserID:    userID,
				CreatedAt: time.Now().Add(-time.Minute),
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
}

// jsonBody serialises any value to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// doRequest routes the request through the full middleware chain.
func doRequest(t *testing.T, h *Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// sessionCookie builds a client-side session cookie for protected routes.
func sessionCookie(sessionID string) *http.Cookie {
	return &http.Cookie{Name: testCookieName, Value: sessionID}
}

// decodeProblem parses an application/problem+json response body.
func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) models.ProblemDetails {
	t.Helper()
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var problem models.ProblemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem
}

// responseCookie finds the Set-Cookie entry by name, or returns nil. When a
// response carries several entries for the same name the last one wins, the
// same way a browser would apply them in order.
func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			found = c
		}
	}
	return found
}
