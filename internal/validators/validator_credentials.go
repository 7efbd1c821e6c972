// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev
package validators

import (
	"context"
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/idea-vault/models"
)

// Credentials field names as they appear in request payloads.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
)

const (
	passwordMinLength = 8
	nameMaxLength     = 50
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CredentialsValidator checks registration and login payloads.
// When fields are given only those fields are checked, which lets the
// login flow skip the name and password-strength rules applied at
// registration time.
type CredentialsValidator struct{}

func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

// Validate checks the given models.Credentials. A nil return means every
// requested field passed; otherwise the returned error is a
// *ValidationErrors listing all violations found.
func (v *CredentialsValidator) Validate(_ context.Context, value any, fields ...string) error {
	var credentials models.Credentials
	switch val := value.(type) {
	case models.Credentials:
		credentials = val
	case *models.Credentials:
		credentials = *val
	default:
		return fmt.Errorf("credentials validator: %w", ErrUnsupportedType)
	}

	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFirstName, FieldLastName}
	}

	violations := &ValidationErrors{}
	for _, field := range fields {
		switch field {
		case FieldEmail:
			v.checkEmail(credentials.Email, violations)
		case FieldPassword:
			v.checkPassword(credentials.Password, violations)
		case FieldFirstName:
			v.checkName(FieldFirstName, credentials.FirstName, violations)
		case FieldLastName:
			v.checkName(FieldLastName, credentials.LastName, violations)
		default:
			return fmt.Errorf("credentials validator: %q: %w", field, ErrUnknownField)
		}
	}

	return violations.orNil()
}

func (v *CredentialsValidator) checkEmail(email string, violations *ValidationErrors) {
	if email == "" {
		violations.add(FieldEmail, "email is required")
		return
	}
	if !emailPattern.MatchString(email) {
		violations.add(FieldEmail, "email must be a valid email address")
	}
}

func (v *CredentialsValidator) checkPassword(password string, violations *ValidationErrors) {
	if password == "" {
		violations.add(FieldPassword, "password is required")
		return
	}
	if utf8.RuneCountInString(password) < passwordMinLength {
		violations.add(FieldPassword, fmt.Sprintf("password must be at least %d characters long", passwordMinLength))
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		violations.add(FieldPassword, "password must contain at least one lowercase letter, one uppercase letter and one number")
	}
}

func (v *CredentialsValidator) checkName(field, name string, violations *ValidationErrors) {
	if name == "" {
		violations.add(field, field+" is required")
		return
	}
	if utf8.RuneCountInString(name) > nameMaxLength {
		violations.add(field, fmt.Sprintf("%s must be at most %d characters long", field, nameMaxLength))
	}
}
