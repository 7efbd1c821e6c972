package store

import (
	"context"

	"github.com/MKhiriev/idea-vault/models"
)

// UserRepository is the persistence contract for user accounts.
//
// Lookups exclude the password digest unless the method explicitly states
// otherwise: only FindUserByEmail — the login path — reads it back.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Fails with ErrEmailAlreadyExists when the normalized
	// email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves an account by its normalized email,
	// INCLUDING the password digest. Fails with ErrUserNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves an account by id, password digest excluded.
	// Fails with ErrUserNotFound when absent.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// IdeaRepository is the persistence contract for the owned idea collection.
type IdeaRepository interface {
	// CreateIdea persists a new idea and returns it with server-assigned
	// fields populated.
	CreateIdea(ctx context.Context, idea models.Idea) (models.Idea, error)

	// FindIdeas returns the page of ideas matching the filter,
	// newest-created first.
	FindIdeas(ctx context.Context, filter models.IdeaFilter) ([]models.Idea, error)

	// CountIdeas returns the total number of ideas matching the filter,
	// ignoring pagination.
	CountIdeas(ctx context.Context, filter models.IdeaFilter) (int64, error)

	// FindIdeaByID retrieves an idea by id regardless of owner; ownership
	// is enforced by the caller. Fails with ErrIdeaNotFound when absent.
	FindIdeaByID(ctx context.Context, ideaID int64) (models.Idea, error)

	// UpdateIdea overwrites the mutable fields of an existing idea and
	// returns the stored result. Fails with ErrIdeaNotFound when absent.
	UpdateIdea(ctx context.Context, idea models.Idea) (models.Idea, error)

	// DeleteIdea removes an idea. Fails with ErrIdeaNotFound when absent.
	DeleteIdea(ctx context.Context, ideaID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
