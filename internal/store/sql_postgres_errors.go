package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification says whether a failed statement is worth repeating.
type ErrorClassification int

const (
	// NonRetryable covers everything final: constraint violations, data and
	// syntax errors, and any error the classifier does not recognise.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient faults that a fresh attempt may outlive,
	// such as a dropped connection or a deadlock rollback.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] by inspecting the
// SQLSTATE code carried by pgx driver errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] only for the PostgreSQL error classes that
// signal a transient condition: connection exceptions (class 08),
// transaction rollbacks including serialization failures and deadlocks
// (class 40), and the server refusing connections during startup or
// shutdown (57P03). Nil errors, non-PostgreSQL errors, and every other
// code are [NonRetryable], so unique-violation and not-found paths are
// never re-run.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
