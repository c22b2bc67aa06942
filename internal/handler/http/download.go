// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/utils"
)

// downloadWindowsInstaller streams the gated Windows installer to an
// authenticated member. The install-history record is written by the service
// before the first body byte leaves the server.
func (h *Handler) downloadWindowsInstaller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		_, _ = utils.WriteProblem(w, r, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	stream, fileName, err := h.services.DownloadService.WindowsInstaller(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer func() {
		if closeErr := stream.Close(); closeErr != nil {
			log.Err(closeErr).Msg("closing installer stream failed")
		}
	}()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, stream); err != nil {
		// headers are already on the wire, so the copy error can only be logged
		log.Err(err).Str("file", fileName).Msg("streaming installer failed")
		return
	}

	log.Info().Str("user_id", userID).Str("file", fileName).Msg("installer downloaded")
}
