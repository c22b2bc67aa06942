package models

// RegisterRequest is the body of POST /api/auth/register and
// /api/auth/register/admin.
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Organization string `json:"organizationName,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TwoFactorCodeRequest asks for a fresh one-time code to be mailed.
type TwoFactorCodeRequest struct {
	UserID string `json:"userId"`
}

// VerifyCodeRequest presents a one-time code, either for standalone
// verification or to complete a pending two-factor login.
type VerifyCodeRequest struct {
	UserID string `json:"userId"`
	Code   string `json:"code"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest redeems a mailed reset token for a new password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ResendConfirmationEmailRequest is the body of
// POST /api/auth/resend-confirmation-email.
type ResendConfirmationEmailRequest struct {
	Email string `json:"email"`
}

// ChangePasswordRequest changes the password of the authenticated caller.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfileRequest overwrites the mutable profile fields.
// Organization defaults to empty when omitted.
type UpdateProfileRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Organization string `json:"organizationName,omitempty"`
}

// TwoFactorSettingRequest switches the email-code second factor on or off
// for the authenticated caller.
type TwoFactorSettingRequest struct {
	Enabled bool `json:"enabled"`
}

// ContactRequest is a contact-form inquiry relayed to the site admins.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
