package config

import "time"

// Policy defaults. The lockout numbers are product policy, not tuning
// knobs: 10 failed attempts lock the account for 15 minutes.
const (
	DefaultSessionCookieName = "App.Session"

	defaultSessionDuration       = 60 * time.Minute
	defaultTwoFactorCodeDuration = 10 * time.Minute
	defaultResetTokenDuration    = 24 * time.Hour
	defaultConfirmTokenDuration  = 72 * time.Hour
	defaultLockoutThreshold      = 10
	defaultLockoutWindow         = 15 * time.Minute
	defaultSweepInterval         = 10 * time.Minute
	defaultRequestTimeout        = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:           "go-member-portal",
			ResetTokenDuration:    defaultResetTokenDuration,
			ConfirmTokenDuration:  defaultConfirmTokenDuration,
			SessionDuration:       defaultSessionDuration,
			SessionCookieName:     DefaultSessionCookieName,
			TwoFactorCodeDuration: defaultTwoFactorCodeDuration,
			LockoutThreshold:      defaultLockoutThreshold,
			LockoutWindow:         defaultLockoutWindow,
		},
		Email: Email{
			Provider: "smtp",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			SweepInterval: defaultSweepInterval,
		},
	}
}
