package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] prepared query which returns every column
// except the password digest via a RETURNING clause, so the caller receives
// the canonical database representation of the newly created account without
// the credential material.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Password, user.FirstName, user.LastName, user.Role)
		return row.Scan(&created.UserID, &created.Email, &created.FirstName, &created.LastName, &created.Role, &created.CreatedAt, &created.UpdatedAt)
	})
	if err != nil {
		switch {
		case postgresError(err) == pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email already taken")
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves a user record whose normalized email matches
// the one provided.
//
// The lookup uses the [findUserByEmail] prepared query and is the ONLY read
// path that scans the password digest: the login flow needs it for
// comparison. Every other consumer must use [userRepository.FindUserByID].
//
// Error handling:
//   - Empty result set → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, findUserByEmail, email)
		return row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.Password, &foundUser.FirstName, &foundUser.LastName, &foundUser.Role, &foundUser.CreatedAt, &foundUser.UpdatedAt)
	})
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrUserNotFound
		default:
			log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by its identifier, password digest
// excluded.
//
// Error handling:
//   - Empty result set → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, findUserByID, userID)
		return row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.FirstName, &foundUser.LastName, &foundUser.Role, &foundUser.CreatedAt, &foundUser.UpdatedAt)
	})
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrUserNotFound
		default:
			log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error: scanning error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return foundUser, nil
}
