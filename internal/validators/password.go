// Package validators contains the input validation rules of the application.
// Validators return human-readable message lists rather than errors so the
// transport layer can surface every violation at once in a problem document.
package validators

import "unicode"

// PasswordPolicy describes the complexity rules applied to every new
// password (registration, reset, and change).
type PasswordPolicy struct {
	MinLength     int
	RequireUpper  bool
	RequireLower  bool
	RequireDigit  bool
	RequireSymbol bool
}

// DefaultPasswordPolicy mirrors the account policy of the product:
// at least 8 characters with upper, lower, digit, and symbol.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:     8,
	RequireUpper:  true,
	RequireLower:  true,
	RequireDigit:  true,
	RequireSymbol: true,
}

// Validate checks the candidate password against the policy and returns
// ok together with the list of violated rules.
func (p PasswordPolicy) Validate(password string) (ok bool, reasons []string) {
	if len([]rune(password)) < p.MinLength {
		reasons = append(reasons, "password is too short")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	if p.RequireUpper && !hasUpper {
		reasons = append(reasons, "password must contain an uppercase letter")
	}
	if p.RequireLower && !hasLower {
		reasons = append(reasons, "password must contain a lowercase letter")
	}
	if p.RequireDigit && !hasDigit {
		reasons = append(reasons, "password must contain a digit")
	}
	if p.RequireSymbol && !hasSymbol {
		reasons = append(reasons, "password must contain a symbol")
	}

	return len(reasons) == 0, reasons
}
