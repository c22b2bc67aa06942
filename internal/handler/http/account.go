// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/utils"
	"github.com/MKhiriev/go-member-portal/models"
)

// forgotPassword always reports success for a well-formed request so the
// endpoint cannot be used to probe which addresses are registered.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	if err := h.services.AccountService.ForgotPassword(ctx, req.Email); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "if the address is registered, a reset link has been sent",
	}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	if err := h.services.AccountService.ResetPassword(ctx, req); err != nil {
		h.writeAccountError(w, r, err)
		return
	}

	log.Info().Msg("password reset completed")
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "password has been reset",
	}, http.StatusOK)
}

// confirmEmail serves the link mailed at registration, so the parameters
// arrive in the query string rather than a JSON body.
func (h *Handler) confirmEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := r.URL.Query().Get("userId")
	token := r.URL.Query().Get("token")
	if userID == "" || token == "" {
		log.Warn().Msg("confirmation link without userId or token")
		_, _ = utils.WriteProblem(w, r, http.StatusBadRequest, "invalid confirmation link", nil)
		return
	}

	if err := h.services.AccountService.ConfirmEmail(ctx, userID, token); err != nil {
		h.writeAccountError(w, r, err)
		return
	}

	log.Info().Str("user_id", userID).Msg("email address confirmed")
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "email address confirmed",
		UserID:  userID,
	}, http.StatusOK)
}

// resendConfirmationEmail masks unknown addresses the same way
// forgotPassword does.
func (h *Handler) resendConfirmationEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ResendConfirmationEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	if err := h.services.AccountService.ResendConfirmationEmail(ctx, req.Email); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "if the address is registered, a confirmation link has been sent",
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		_, _ = utils.WriteProblem(w, r, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	if err := h.services.AccountService.ChangePassword(ctx, userID, req); err != nil {
		h.writeAccountError(w, r, err)
		return
	}

	log.Info().Str("user_id", userID).Msg("password changed")
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "password has been changed",
	}, http.StatusOK)
}
