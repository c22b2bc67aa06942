// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	cfg := validBaseConfig()

	require.NoError(t, cfg.validate())
}

func TestValidate_SendGridProvider(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Email.Provider = "sendgrid"

	require.NoError(t, cfg.validate())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenSignKey = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing token issuer",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenIssuer = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero lockout threshold",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.LockoutThreshold = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "negative lockout window",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.LockoutWindow = -time.Minute },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing server address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown email provider",
			mutate:  func(cfg *StructuredConfig) { cfg.Email.Provider = "carrier-pigeon" },
			wantErr: ErrInvalidEmailConfigs,
		},
		{
			name:    "empty email provider",
			mutate:  func(cfg *StructuredConfig) { cfg.Email.Provider = "" },
			wantErr: ErrInvalidEmailConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
