package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/service"
	"github.com/MKhiriev/go-member-portal/internal/utils"
	"github.com/MKhiriev/go-member-portal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	user, err := h.services.AccountService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "registration successful, confirm your email address",
		UserID:  user.UserID,
	}, http.StatusOK)
}

func (h *Handler) registerAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	user, err := h.services.AccountService.RegisterAdmin(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("administrator registered")
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "registration successful, confirm your email address",
		UserID:  user.UserID,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if result.RequiresTwoFactor {
		log.Info().Str("user_id", result.UserID).Msg("two-factor code required")
		_, _ = utils.WriteJSON(w, models.AuthResponse{
			Success:           true,
			Message:           "a one-time code has been sent to your email address",
			UserID:            result.UserID,
			RequiresTwoFactor: true,
		}, http.StatusOK)
		return
	}

	h.setSessionCookie(w, result.Session)
	log.Info().Str("user_id", result.UserID).Msg("user logged in")
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		UserID:  result.UserID,
	}, http.StatusOK)
}

func (h *Handler) loginWithTwoFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	result, err := h.services.AuthService.LoginWithTwoFactor(ctx, req.UserID, req.Code)
	if err != nil {
		// a failed code on the login path is an authentication failure
		if errors.Is(err, service.ErrInvalidCode) {
			log.Err(err).Msg("two-factor login rejected")
			_, _ = utils.WriteProblem(w, r, http.StatusUnauthorized, "invalid or expired code", nil)
			return
		}
		h.writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, result.Session)
	log.Info().Str("user_id", result.UserID).Msg("user logged in with two-factor code")
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		UserID:  result.UserID,
	}, http.StatusOK)
}

func (h *Handler) sendTwoFactorCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.TwoFactorCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	if err := h.services.AuthService.SendTwoFactorCode(ctx, req.UserID); err != nil {
		h.writeAccountError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TwoFactorResponse{
		Success: true,
		Message: "a one-time code has been sent to your email address",
	}, http.StatusOK)
}

func (h *Handler) verifyTwoFactorCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	if err := h.services.AuthService.VerifyTwoFactorCode(ctx, req.UserID, req.Code); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TwoFactorResponse{Success: true}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no session id in request context")
		_, _ = utils.WriteProblem(w, r, http.StatusBadRequest, "no active session", nil)
		return
	}

	if err := h.services.AuthService.Logout(ctx, sessionID); err != nil {
		log.Err(err).Msg("logout failed")
		_, _ = utils.WriteProblem(w, r, http.StatusBadRequest, "logout failed", nil)
		return
	}

	h.clearSessionCookie(w)
	log.Info().Msg("user logged out")
	w.WriteHeader(http.StatusOK)
}
