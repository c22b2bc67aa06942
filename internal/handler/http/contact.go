package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/utils"
	"github.com/MKhiriev/go-member-portal/models"
)

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidJSON(w, r, err)
		return
	}

	if err := h.services.ContactService.Relay(ctx, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("subject", req.Subject).Msg("contact inquiry relayed")
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "your message has been sent",
	}, http.StatusOK)
}
