package http

import (
	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/service"
)

type Handler struct {
	services *service.Services

	sessionCookieName string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		sessionCookieName: cfg.SessionCookieName,
		logger:            logger,
	}
}
