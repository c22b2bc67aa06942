// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestPasswordPolicy_Validate
// ---------------------------------------------------------------------------

func TestPasswordPolicy_Validate_Accepts(t *testing.T) {
	ok, reasons := DefaultPasswordPolicy.Validate("Str0ng!Pass")

	require.True(t, ok)
	assert.Empty(t, reasons)
}

func TestPasswordPolicy_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		wantReasons int
	}{
		{"empty", "", 5},
		{"too short but complex", "S0rt!", 1},
		{"no uppercase", "weak0!pass", 1},
		{"no lowercase", "WEAK0!PASS", 1},
		{"no digit", "Weakest!Pass", 1},
		{"no symbol", "Weak0Pass", 1},
		{"letters only", "weakpassword", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reasons := DefaultPasswordPolicy.Validate(tt.password)

			assert.False(t, ok)
			assert.Len(t, reasons, tt.wantReasons)
		})
	}
}

func TestPasswordPolicy_Validate_UnicodeLength(t *testing.T) {
	// length counts runes, not bytes
	ok, reasons := DefaultPasswordPolicy.Validate("Пароль1!")

	require.True(t, ok, "reasons: %v", reasons)
}

func TestPasswordPolicy_Validate_RelaxedPolicy(t *testing.T) {
	policy := PasswordPolicy{MinLength: 4}

	ok, reasons := policy.Validate("abcd")

	require.True(t, ok)
	assert.Empty(t, reasons)
}
