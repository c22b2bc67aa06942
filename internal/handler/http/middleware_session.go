// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/utils"
)

// withSession guards a route group behind the server-side session.
//
// The middleware reads the session cookie, resolves it through
// [service.AuthService.ValidateSession] (which also slides the expiration
// forward), refreshes the cookie with the extended expiry, and stores the
// user and session identifiers in the request context for downstream
// handlers.
//
// A missing cookie, an unknown session id, or an expired session all produce
// HTTP 401 with a problem document. There is no redirect: API clients are
// expected to re-authenticate.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.sessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Warn().Msg("request without a session cookie")
			_, _ = utils.WriteProblem(w, r, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		session, err := h.services.AuthService.ValidateSession(ctx, cookie.Value)
		if err != nil {
			log.Warn().Err(err).Msg("session rejected")
			h.clearSessionCookie(w)
			_, _ = utils.WriteProblem(w, r, http.StatusUnauthorized, "session is missing or expired", nil)
			return
		}

		h.setSessionCookie(w, session)

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, session.UserID)
		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, session.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
