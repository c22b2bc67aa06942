package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-member-portal/internal/service"
	"github.com/MKhiriev/go-member-portal/models"
)

func TestContact_Success(t *testing.T) {
	contact := &mockContactService{
		relayFn: func(_ context.Context, req models.ContactRequest) error {
			assert.Equal(t, "Licensing", req.Subject)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{ContactService: contact})

	body := jsonBody(t, models.ContactRequest{
		Name:    "John",
		Email:   "john@example.com",
		Subject: "Licensing",
		Message: "How many seats does one license cover?",
	})
	rec := doRequest(t, h, http.MethodPost, "/api/contact", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestContact_ValidationErrors(t *testing.T) {
	contact := &mockContactService{
		relayFn: func(_ context.Context, _ models.ContactRequest) error {
			return service.NewValidationError("name is required", "message is required")
		},
	}
	h := newTestHandler(t, &service.Services{ContactService: contact})

	rec := doRequest(t, h, http.MethodPost, "/api/contact", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	problem := decodeProblem(t, rec)
	assert.Equal(t, "invalid data provided", problem.Title)
	assert.Len(t, problem.Errors, 2)
}

func TestContact_RelayFailure(t *testing.T) {
	contact := &mockContactService{
		relayFn: func(_ context.Context, _ models.ContactRequest) error {
			return assert.AnError
		},
	}
	h := newTestHandler(t, &service.Services{ContactService: contact})

	body := jsonBody(t, models.ContactRequest{
		Name:    "John",
		Email:   "john@example.com",
		Subject: "Licensing",
		Message: "How many seats does one license cover?",
	})
	rec := doRequest(t, h, http.MethodPost, "/api/contact", body)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeProblem(t, rec).Title)
}
