package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/utils"
	"github.com/MKhiriev/go-member-portal/models"
)

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		_, _ = utils.WriteProblem(w, r, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	user, err := h.services.ProfileService.Info(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.UserInfoResponse{
		UserID:       user.UserID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Organization: user.Organization,
		CreatedAt:    user.CreatedAt,
		LastLoginAt:  user.LastLoginAt,
	}, http.StatusOK)
}

func (h *Handler) myPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		_, _ = utils.WriteProblem(w, r, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	user, history, err := h.services.ProfileService.MyPage(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.UserProfileResponse{
		UserID:         user.UserID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Organization:   user.Organization,
		InstallHistory: history,
	}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		_, _ = utils.WriteProblem(w, r, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	if err := h.services.ProfileService.UpdateProfile(ctx, userID, req); err != nil {
		h.writeAccountError(w, r, err)
		return
	}

	log.Info().Str("user_id", userID).Msg("profile updated")
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "profile has been updated",
	}, http.StatusOK)
}

func (h *Handler) setTwoFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		_, _ = utils.WriteProblem(w, r, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var req models.TwoFactorSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	if err := h.services.ProfileService.SetTwoFactor(ctx, userID, req.Enabled); err != nil {
		h.writeAccountError(w, r, err)
		return
	}

	log.Info().Str("user_id", userID).Bool("enabled", req.Enabled).Msg("two-factor setting changed")
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "two-factor setting has been updated",
	}, http.StatusOK)
}
