package service

import (
	"context"

	"github.com/MKhiriev/idea-vault/models"
)

// AuthService owns the account lifecycle: registration, credential
// verification, and the JWT token round trip.
type AuthService interface {
	// RegisterUser validates the credentials, hashes the password, and
	// persists a new account with the default user role.
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login verifies the email/password pair and returns the matching
	// account. Unknown email and wrong password are indistinguishable to
	// the caller: both fail with ErrInvalidCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// CurrentUser resolves the account behind a previously issued token's
	// subject. Fails with ErrTokenIsExpiredOrInvalid when the account no
	// longer exists.
	CurrentUser(ctx context.Context, userID int64) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// IdeaService owns the per-user idea collection. Every operation receives
// the caller's identity and enforces the owner-or-admin access rule before
// touching a record.
type IdeaService interface {
	// ListIdeas returns one page of the caller's own ideas plus the total
	// count matching the filter. The filter's OwnerID is always overwritten
	// with the caller's id.
	ListIdeas(ctx context.Context, identity models.Identity, filter models.IdeaFilter) ([]models.Idea, int64, error)

	// GetIdea loads a single idea. Fails with ErrForbidden when the caller
	// is neither the owner nor an admin.
	GetIdea(ctx context.Context, identity models.Identity, ideaID int64) (models.Idea, error)

	// CreateIdea validates the input and persists a new idea owned by the
	// caller. An empty status defaults to draft.
	CreateIdea(ctx context.Context, identity models.Identity, input models.IdeaInput) (models.Idea, error)

	// UpdateIdea validates the input and overwrites an existing idea's
	// mutable fields. Ownership never changes.
	UpdateIdea(ctx context.Context, identity models.Identity, ideaID int64, input models.IdeaInput) (models.Idea, error)

	// DeleteIdea removes an idea after the access check.
	DeleteIdea(ctx context.Context, identity models.Identity, ideaID int64) error
}
