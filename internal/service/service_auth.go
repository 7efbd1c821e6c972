// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/idea-vault/internal/config"
	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/internal/store"
	"github.com/MKhiriev/idea-vault/internal/utils"
	"github.com/MKhiriev/idea-vault/internal/validators"
	"github.com/MKhiriev/idea-vault/models"
)

// developmentTokenSignKey is substituted when no sign key is configured
// outside production. Config validation rejects an empty key in production,
// so issued tokens are never signed with this value there.
const developmentTokenSignKey = "idea-vault-development-only-sign-key"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration and login payloads before any hashing
	// or persistence happens.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// When cfg.TokenSignKey is empty and the application does not run in
// production, a fixed development key is used and a warning is logged.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, app config.App, cfg config.Auth, log *logger.Logger) AuthService {
	signKey := cfg.TokenSignKey
	if signKey == "" && app.Environment != config.EnvProduction {
		signKey = developmentTokenSignKey
		log.Warn().Msg("AUTH_TOKEN_SIGN_KEY is not set, using the built-in development key; do not run this configuration in production")
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   signKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         log,
	}
}

// RegisterUser creates a new user account.
//
// The credentials are normalized and fully validated (email format,
// password policy, both names), the password is hashed with bcrypt, and
// persistence is delegated to the UserRepository. Every account starts
// with the regular user role; there is no way to self-register as admin.
//
// Returns the persisted user (with a server-assigned UserID, password
// digest excluded) or:
//   - a *validators.ValidationErrors listing every violation.
//   - a wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Normalize()
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("email", credentials.Email).Msg("registration payload failed validation")
		return models.User{}, err
	}

	digest, err := utils.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:     credentials.Email,
		Password:  digest,
		FirstName: credentials.FirstName,
		LastName:  credentials.LastName,
		Role:      models.RoleUser,
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Only the email and password fields are validated, the account is looked
// up by the normalized email, and the submitted password is compared
// against the stored bcrypt digest.
//
// Returns the authenticated user record (digest cleared) or:
//   - a *validators.ValidationErrors if email or password is malformed.
//   - ErrInvalidCredentials for both an unknown email and a wrong
//     password, so a caller cannot probe which emails are registered.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Normalize()
	if err := a.validator.Validate(ctx, credentials, validators.FieldEmail, validators.FieldPassword); err != nil {
		log.Error().Err(err).Str("email", credentials.Email).Msg("login payload failed validation")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", credentials.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	match, err := utils.VerifyPassword(credentials.Password, foundUser.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password verification failed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		log.Warn().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser.Password = ""
	return foundUser, nil
}

// CurrentUser resolves the account behind an authenticated request.
//
// It is called after token validation, so a missing account means the user
// was deleted after the token was issued; that case is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Int64("id", userID).Msg("token subject no longer exists")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed
// if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
