// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// member-portal backend. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token keys, session parameters, and the lockout policy.
	Auth Auth `envPrefix:"AUTH_"`

	// Email holds outbound mail delivery settings for both supported
	// providers (SMTP and the SendGrid-style HTTP API).
	Email Email `envPrefix:"EMAIL_"`

	// Storage holds configuration for all persistence backends, including
	// the relational database and the installer file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Admin optionally describes the bootstrap administrator account
	// ensured at startup. Seeding is skipped when Email is empty.
	Admin Admin `envPrefix:"ADMIN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds the security parameters of the authentication core: recovery
// token signing, session lifetime, two-factor code lifetime, and the
// account lockout policy.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify recovery
	// tokens (password reset, email confirmation). Must be kept
	// confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every recovery token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// ResetTokenDuration is the validity window of password-reset tokens.
	// Env: AUTH_RESET_TOKEN_DURATION
	ResetTokenDuration time.Duration `env:"RESET_TOKEN_DURATION"`

	// ConfirmTokenDuration is the validity window of email-confirmation
	// tokens.
	// Env: AUTH_CONFIRM_TOKEN_DURATION
	ConfirmTokenDuration time.Duration `env:"CONFIRM_TOKEN_DURATION"`

	// SessionDuration is the sliding session lifetime; every authenticated
	// request extends the session by this amount.
	// Env: AUTH_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SessionCookieName names the HTTP-only cookie that carries the opaque
	// session identifier.
	// Env: AUTH_SESSION_COOKIE_NAME
	SessionCookieName string `env:"SESSION_COOKIE_NAME"`

	// TwoFactorCodeDuration is the validity window of mailed one-time codes.
	// Env: AUTH_TWO_FACTOR_CODE_DURATION
	TwoFactorCodeDuration time.Duration `env:"TWO_FACTOR_CODE_DURATION"`

	// LockoutThreshold is the number of consecutive failed password checks
	// that locks the account.
	// Env: AUTH_LOCKOUT_THRESHOLD
	LockoutThreshold int `env:"LOCKOUT_THRESHOLD"`

	// LockoutWindow is the cool-down period applied once the threshold is
	// crossed; all logins are rejected until it elapses.
	// Env: AUTH_LOCKOUT_WINDOW
	LockoutWindow time.Duration `env:"LOCKOUT_WINDOW"`

	// AppURL is the public base URL embedded in mailed links
	// (e.g. "https://portal.example.com").
	// Env: AUTH_APP_URL
	AppURL string `env:"APP_URL"`
}

// Email holds outbound mail settings. Provider selects the implementation;
// the matching sub-struct must be filled in.
type Email struct {
	// Provider selects the sender implementation: "smtp" or "sendgrid".
	// Env: EMAIL_PROVIDER
	Provider string `env:"PROVIDER"`

	// From is the sender address placed on every outbound message.
	// Env: EMAIL_FROM
	From string `env:"FROM"`

	// AdminEmail receives relayed contact-form inquiries.
	// Env: EMAIL_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL"`

	// SMTP holds settings for the SMTP provider.
	SMTP SMTP `envPrefix:"SMTP_"`

	// SendGrid holds settings for the HTTP API provider.
	SendGrid SendGrid `envPrefix:"SENDGRID_"`
}

// SMTP holds SMTP relay connection settings.
type SMTP struct {
	// Host and Port locate the SMTP relay.
	// Env: EMAIL_SMTP_HOST / EMAIL_SMTP_PORT
	Host string `env:"HOST"`
	Port int    `env:"PORT"`

	// User and Password authenticate against the relay.
	// Env: EMAIL_SMTP_USER / EMAIL_SMTP_PASSWORD
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
}

// SendGrid holds settings for the SendGrid-style HTTP mail API.
type SendGrid struct {
	// APIKey is the bearer token presented to the API.
	// Env: EMAIL_SENDGRID_API_KEY
	APIKey string `env:"API_KEY"`

	// APIURL overrides the mail-send endpoint; defaults to the public
	// SendGrid v3 endpoint when empty. Used by tests to point at a local
	// HTTP server.
	// Env: EMAIL_SENDGRID_API_URL
	APIURL string `env:"API_URL"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the installer file store settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" scheme selects
	// the PostgreSQL backend (pgx); any other value is treated as a SQLite
	// file path for local development runs.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the installer artifact store.
type Files struct {
	// InstallerDir is the directory scanned for platform installer
	// artifacts served by the gated download endpoint.
	// Env: STORAGE_FILES_INSTALLER_DIR
	InstallerDir string `env:"INSTALLER_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is the period between runs of the expiry sweep that
	// removes used or expired two-factor codes and dead sessions.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// Admin describes the bootstrap administrator ensured at startup.
type Admin struct {
	// Email and Password of the seeded admin account. Seeding is a no-op
	// when Email is empty or the account already exists.
	// Env: ADMIN_EMAIL / ADMIN_PASSWORD
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win, zero fields fall through):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
