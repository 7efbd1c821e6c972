// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/idea-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCredentials() models.Credentials {
	return models.Credentials{
		Email:     "jane.doe@example.com",
		Password:  "Sup3rSecret",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func fieldErrors(t *testing.T, err error) []models.FieldError {
	t.Helper()
	var verr *ValidationErrors
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func fieldNames(fields []models.FieldError) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return names
}

// ---------------------------------------------------------------------------
// TestNewCredentialsValidator
// ---------------------------------------------------------------------------

func TestNewCredentialsValidator(t *testing.T) {
	v := NewCredentialsValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestCredentialsValidate_Dispatch
// ---------------------------------------------------------------------------

func TestCredentialsValidate_Dispatch(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("Credentials value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCredentials()))
	})

	t.Run("Credentials pointer", func(t *testing.T) {
		c := validCredentials()
		require.NoError(t, v.Validate(ctx, &c))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validCredentials(), "nonexistent")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestCredentialsValidate_Email
// ---------------------------------------------------------------------------

func TestCredentialsValidate_Email(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	t.Run("empty email", func(t *testing.T) {
		c := validCredentials()
		c.Email = ""
		fields := fieldErrors(t, v.Validate(ctx, c, FieldEmail))
		require.Len(t, fields, 1)
		assert.Equal(t, FieldEmail, fields[0].Field)
		assert.Contains(t, fields[0].Message, "required")
	})

	t.Run("invalid formats", func(t *testing.T) {
		for _, email := range []string{
			"plain",
			"no-domain@",
			"@no-local.example.com",
			"missing-tld@example",
			"spaces in@example.com",
			"double@@example.com",
		} {
			c := validCredentials()
			c.Email = email
			err := v.Validate(ctx, c, FieldEmail)
			require.Error(t, err, "email %q should be rejected", email)
		}
	})

	t.Run("valid formats", func(t *testing.T) {
		for _, email := range []string{
			"jane@example.com",
			"jane.doe+tag@sub.example.co.uk",
			"j@e.io",
		} {
			c := validCredentials()
			c.Email = email
			require.NoError(t, v.Validate(ctx, c, FieldEmail), "email %q should be accepted", email)
		}
	})
}

// ---------------------------------------------------------------------------
// TestCredentialsValidate_Password
// ---------------------------------------------------------------------------

func TestCredentialsValidate_Password(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	t.Run("empty password", func(t *testing.T) {
		c := validCredentials()
		c.Password = ""
		fields := fieldErrors(t, v.Validate(ctx, c, FieldPassword))
		require.Len(t, fields, 1)
		assert.Contains(t, fields[0].Message, "required")
	})

	t.Run("too short", func(t *testing.T) {
		c := validCredentials()
		c.Password = "Ab1"
		fields := fieldErrors(t, v.Validate(ctx, c, FieldPassword))
		require.NotEmpty(t, fields)
		assert.Contains(t, fields[0].Message, "at least 8 characters")
	})

	t.Run("missing character classes", func(t *testing.T) {
		for _, password := range []string{
			"alllowercase1", // no upper
			"ALLUPPERCASE1", // no lower
			"NoDigitsHere",  // no digit
		} {
			c := validCredentials()
			c.Password = password
			err := v.Validate(ctx, c, FieldPassword)
			require.Error(t, err, "password %q should be rejected", password)
		}
	})

	t.Run("short and weak reports both violations", func(t *testing.T) {
		c := validCredentials()
		c.Password = "abc"
		fields := fieldErrors(t, v.Validate(ctx, c, FieldPassword))
		assert.Len(t, fields, 2)
	})

	t.Run("strong password accepted", func(t *testing.T) {
		c := validCredentials()
		c.Password = "Sup3rSecret"
		require.NoError(t, v.Validate(ctx, c, FieldPassword))
	})
}

// ---------------------------------------------------------------------------
// TestCredentialsValidate_Names
// ---------------------------------------------------------------------------

func TestCredentialsValidate_Names(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	t.Run("empty first name", func(t *testing.T) {
		c := validCredentials()
		c.FirstName = ""
		fields := fieldErrors(t, v.Validate(ctx, c, FieldFirstName))
		require.Len(t, fields, 1)
		assert.Equal(t, FieldFirstName, fields[0].Field)
	})

	t.Run("empty last name", func(t *testing.T) {
		c := validCredentials()
		c.LastName = ""
		fields := fieldErrors(t, v.Validate(ctx, c, FieldLastName))
		require.Len(t, fields, 1)
		assert.Equal(t, FieldLastName, fields[0].Field)
	})

	t.Run("name too long", func(t *testing.T) {
		c := validCredentials()
		c.FirstName = strings.Repeat("a", 51)
		err := v.Validate(ctx, c, FieldFirstName)
		require.Error(t, err)
	})

	t.Run("name at limit", func(t *testing.T) {
		c := validCredentials()
		c.LastName = strings.Repeat("a", 50)
		require.NoError(t, v.Validate(ctx, c, FieldLastName))
	})
}

// ---------------------------------------------------------------------------
// TestCredentialsValidate_CollectsAllViolations
// ---------------------------------------------------------------------------

func TestCredentialsValidate_CollectsAllViolations(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	c := models.Credentials{}
	fields := fieldErrors(t, v.Validate(ctx, c))

	names := fieldNames(fields)
	assert.Contains(t, names, FieldEmail)
	assert.Contains(t, names, FieldPassword)
	assert.Contains(t, names, FieldFirstName)
	assert.Contains(t, names, FieldLastName)
}

// ---------------------------------------------------------------------------
// TestCredentialsValidate_LoginSubset
// ---------------------------------------------------------------------------

func TestCredentialsValidate_LoginSubset(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	// login never checks names, so empty names must not fail
	c := models.Credentials{
		Email:    "jane@example.com",
		Password: "Sup3rSecret",
	}
	require.NoError(t, v.Validate(ctx, c, FieldEmail, FieldPassword))
}
