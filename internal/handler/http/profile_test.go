package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-member-portal/internal/service"
	"github.com/MKhiriev/go-member-portal/models"
)

func TestInfo_Success(t *testing.T) {
	auth := validSessionAuth("sess-1", "user-1")
	profile := &mockProfileService{
		infoFn: func(_ context.Context, userID string) (models.User, error) {
			return models.User{
				UserID:       userID,
				Email:        "john@example.com",
				FirstName:    "John",
				LastName:     "Smith",
				Organization: "ACME",
				CreatedAt:    time.Now().Add(-24 * time.Hour),
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth, ProfileService: profile})

	rec := doRequest(t, h, http.MethodGet, "/api/auth/manage/info", "", sessionCookie("sess-1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserInfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "john@example.com", resp.Email)
	assert.Equal(t, "ACME", resp.Organization)
}

func TestInfo_UnknownUser(t *testing.T) {
	auth := validSessionAuth("sess-1", "ghost")
	profile := &mockProfileService{
		infoFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrUserNotFound
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth, ProfileService: profile})

	rec := doRequest(t, h, http.MethodGet, "/api/auth/manage/info", "", sessionCookie("sess-1"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user was not found", decodeProblem(t, rec).Title)
}

func TestMyPage_IncludesInstallHistory(t *testing.T) {
	auth := validSessionAuth("sess-1", "user-1")
	profile := &mockProfileService{
		myPageFn: func(_ context.Context, userID string) (models.User, []models.InstallHistoryRecord, error) {
			user := models.User{UserID: userID, Email: "john@example.com", FirstName: "John"}
			history := []models.InstallHistoryRecord{
				{ID: 2, UserID: userID, OS: "Windows", InstalledAt: time.Now()},
				{ID: 1, UserID: userID, OS: "Windows", InstalledAt: time.Now().Add(-time.Hour)},
			}
			return user, history, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth, ProfileService: profile})

	rec := doRequest(t, h, http.MethodGet, "/api/auth/mypage", "", sessionCookie("sess-1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	require.Len(t, resp.InstallHistory, 2)
	assert.Equal(t, "Windows", resp.InstallHistory[0].OS)
}

func TestUpdateProfile_Success(t *testing.T) {
	auth := validSessionAuth("sess-1", "user-1")
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, userID string, req models.UpdateProfileRequest) error {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "Jane", req.FirstName)
			assert.Equal(t, "Doe", req.LastName)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth, ProfileService: profile})

	body := jsonBody(t, models.UpdateProfileRequest{FirstName: "Jane", LastName: "Doe", Organization: "ACME"})
	rec := doRequest(t, h, http.MethodPut, "/api/auth/mypage", body, sessionCookie("sess-1"))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSetTwoFactor_Enable(t *testing.T) {
	auth := validSessionAuth("sess-1", "user-1")
	profile := &mockProfileService{
		setTwoFactorFn: func(_ context.Context, userID string, enabled bool) error {
			assert.Equal(t, "user-1", userID)
			assert.True(t, enabled)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth, ProfileService: profile})

	body := jsonBody(t, models.TwoFactorSettingRequest{Enabled: true})
	rec := doRequest(t, h, http.MethodPut, "/api/auth/manage/2fa", body, sessionCookie("sess-1"))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSetTwoFactor_UnknownUser(t *testing.T) {
	auth := validSessionAuth("sess-1", "ghost")
	profile := &mockProfileService{
		setTwoFactorFn: func(_ context.Context, _ string, _ bool) error {
			return service.ErrUserNotFound
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth, ProfileService: profile})

	body := jsonBody(t, models.TwoFactorSettingRequest{Enabled: true})
	rec := doRequest(t, h, http.MethodPut, "/api/auth/manage/2fa", body, sessionCookie("sess-1"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "user was not found", decodeProblem(t, rec).Title)
}

func TestUpdateProfile_ValidationErrors(t *testing.T) {
	auth := validSessionAuth("sess-1", "user-1")
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, _ string, _ models.UpdateProfileRequest) error {
			return service.NewValidationError("first name is required", "last name is required")
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth, ProfileService: profile})

	rec := doRequest(t, h, http.MethodPut, "/api/auth/mypage", `{}`, sessionCookie("sess-1"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	problem := decodeProblem(t, rec)
	assert.Len(t, problem.Errors, 2)
}
