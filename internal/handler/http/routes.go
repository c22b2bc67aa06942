package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/register/admin", h.registerAdmin)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/login/2fa", h.loginWithTwoFactor)
		r.Post("/api/auth/send-2fa-code", h.sendTwoFactorCode)
		r.Post("/api/auth/verify-2fa-code", h.verifyTwoFactorCode)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/reset-password", h.resetPassword)
		r.Get("/api/auth/confirm-email", h.confirmEmail)
		r.Post("/api/auth/resend-confirmation-email", h.resendConfirmationEmail)
		r.Post("/api/contact", h.contact)
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/manage/info", h.info)
		r.Get("/api/auth/mypage", h.myPage)
		r.Put("/api/auth/mypage", h.updateProfile)
		r.Put("/api/auth/manage/2fa", h.setTwoFactor)
		r.Post("/api/auth/change-password", h.changePassword)
		r.Get("/api/download/windows", h.downloadWindowsInstaller)
	})

	return router
}
