package validators

import (
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-member-portal/models"
)

// ValidEmail reports whether the address parses as RFC 5322.
func ValidEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

// RegisterRequest validates a registration body: email shape, required name
// fields, and the password policy. Returns every violation found.
func RegisterRequest(req models.RegisterRequest, policy PasswordPolicy) []string {
	var errs []string

	if !ValidEmail(req.Email) {
		errs = append(errs, "a valid email address is required")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		errs = append(errs, "first name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs = append(errs, "last name is required")
	}

	if ok, reasons := policy.Validate(req.Password); !ok {
		errs = append(errs, reasons...)
	}

	return errs
}

// ContactRequest validates a contact-form body.
func ContactRequest(req models.ContactRequest) []string {
	var errs []string

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !ValidEmail(req.Email) {
		errs = append(errs, "a valid email address is required")
	}
	if strings.TrimSpace(req.Subject) == "" {
		errs = append(errs, "subject is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		errs = append(errs, "message is required")
	}

	return errs
}

// UpdateProfileRequest validates a profile update body.
func UpdateProfileRequest(req models.UpdateProfileRequest) []string {
	var errs []string

	if strings.TrimSpace(req.FirstName) == "" {
		errs = append(errs, "first name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs = append(errs, "last name is required")
	}

	return errs
}
