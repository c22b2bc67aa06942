package service

import (
	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/email"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/store"
)

// Services aggregates every application service behind one handle for
// handler wiring.
type Services struct {
	AuthService     AuthService
	AccountService  AccountService
	ProfileService  ProfileService
	DownloadService DownloadService
	ContactService  ContactService
}

// NewServices wires all services over the given storages and mail sender.
func NewServices(storages *store.Storages, sender email.Sender, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	credentials := NewCredentialStore(storages.UserRepository, cfg.Auth, logger)

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			storages.TwoFactorRepository,
			storages.SessionRepository,
			credentials,
			sender,
			cfg.Auth,
			logger,
		),
		AccountService: NewAccountService(
			storages.UserRepository,
			credentials,
			sender,
			cfg.Auth,
			cfg.Admin,
			logger,
		),
		ProfileService:  NewProfileService(storages.UserRepository, storages.InstallHistoryRepository, logger),
		DownloadService: NewDownloadService(storages.InstallerFileStore, storages.InstallHistoryRepository, logger),
		ContactService:  NewContactService(sender, cfg.Email, logger),
	}
}
