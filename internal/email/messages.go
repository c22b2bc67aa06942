// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package email

import (
	"fmt"
	"net/url"
	"strings"
)

// ConfirmationMessage builds the email-confirmation message. The link lands
// on the portal frontend, which relays userID and token back to the API.
func ConfirmationMessage(appURL, to, userID, token string) Message {
	link := fmt.Sprintf("%s/confirm-email?userId=%s&token=%s",
		strings.TrimRight(appURL, "/"), url.QueryEscape(userID), url.QueryEscape(token))

	return Message{
		To:      to,
		Subject: "Confirm your email address",
		TextBody: fmt.Sprintf(
			"Welcome!\n\nPlease confirm your email address by opening the link below:\n\n%s\n\n"+
				"If you did not create an account, you can ignore this message.\n", link),
		HTMLBody: fmt.Sprintf(
			`<p>Welcome!</p><p>Please confirm your email address by clicking <a href="%s">this link</a>.</p>`+
				`<p>If you did not create an account, you can ignore this message.</p>`, link),
	}
}

// PasswordResetMessage builds the password-reset message.
func PasswordResetMessage(appURL, to, token string) Message {
	link := fmt.Sprintf("%s/reset-password?email=%s&token=%s",
		strings.TrimRight(appURL, "/"), url.QueryEscape(to), url.QueryEscape(token))

	return Message{
		To:      to,
		Subject: "Reset your password",
		TextBody: fmt.Sprintf(
			"We received a request to reset your password.\n\nOpen the link below to choose a new one:\n\n%s\n\n"+
				"If you did not request a reset, you can ignore this message.\n", link),
		HTMLBody: fmt.Sprintf(
			`<p>We received a request to reset your password.</p>`+
				`<p><a href="%s">Choose a new password</a>.</p>`+
				`<p>If you did not request a reset, you can ignore this message.</p>`, link),
	}
}

// TwoFactorCodeMessage builds the one-time sign-in code message.
func TwoFactorCodeMessage(to, code string) Message {
	return Message{
		To:      to,
		Subject: "Your sign-in code",
		TextBody: fmt.Sprintf(
			"Your sign-in code is: %s\n\nThe code expires in 10 minutes. "+
				"If you did not try to sign in, change your password immediately.\n", code),
		HTMLBody: fmt.Sprintf(
			`<p>Your sign-in code is: <strong>%s</strong></p>`+
				`<p>The code expires in 10 minutes. If you did not try to sign in, change your password immediately.</p>`, code),
	}
}

// ContactMessage builds the relayed contact-form inquiry addressed to the
// portal administrator.
func ContactMessage(adminEmail, name, replyTo, subject, body string) Message {
	return Message{
		To:      adminEmail,
		Subject: fmt.Sprintf("Contact form: %s", subject),
		TextBody: fmt.Sprintf(
			"New inquiry from the contact form.\n\nName: %s\nEmail: %s\n\n%s\n", name, replyTo, body),
	}
}
