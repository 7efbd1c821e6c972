package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/models"
)

// ideaRepository is the PostgreSQL-backed implementation of [IdeaRepository].
// It executes all idea CRUD and listing operations against the "ideas" table
// using the embedded [*DB] connection. Read paths join the owner's display
// fields; transient driver errors are retried through [DB.withRetry].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (owner_id, idea_id, filter parameters).
type ideaRepository struct {
	*DB
	logger *logger.Logger
}

// NewIdeaRepository constructs an [IdeaRepository] backed by the provided
// database connection and logger.
func NewIdeaRepository(db *DB, logger *logger.Logger) IdeaRepository {
	logger.Debug().Msg("creating idea repository")
	return &ideaRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateIdea persists a new idea and returns the fully populated
// [models.Idea] with server-assigned fields (IdeaID, CreatedAt, UpdatedAt).
// The RETURNING clause carries no owner join; the service attaches the
// owner summary from the caller's identity.
func (p *ideaRepository) CreateIdea(ctx context.Context, idea models.Idea) (models.Idea, error) {
	log := logger.FromContext(ctx)

	var created models.Idea
	err := p.DB.withRetry(ctx, func() error {
		row := p.DB.QueryRowContext(ctx, createIdea,
			idea.Title,
			idea.Description,
			idea.Problem,
			idea.Solution,
			idea.TargetMarket,
			idea.UniqueValueProposition,
			idea.BusinessModel,
			idea.Competitors,
			idea.Status,
			idea.OwnerID,
		)

		var scanErr error
		created, scanErr = scanIdea(row)
		return scanErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "ideaRepository.CreateIdea").
			Int64("owner_id", idea.OwnerID).
			Msg("failed to insert idea")
		return models.Idea{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindIdeas retrieves the page of ideas that match the criteria in filter,
// newest-created first, each with the owner summary joined in.
//
// Filtering is always applied by OwnerID. Status and Search narrow the
// result further when set; pagination is taken from the filter's page and
// limit.
func (p *ideaRepository) FindIdeas(ctx context.Context, filter models.IdeaFilter) ([]models.Idea, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIdeasQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "ideaRepository.FindIdeas").
			Int64("owner_id", filter.OwnerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var results []models.Idea
	err = p.DB.withRetry(ctx, func() error {
		rows, queryErr := p.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		results = make([]models.Idea, 0, filter.Limit)

		for rows.Next() {
			var item models.Idea
			var owner models.IdeaOwner

			scanErr := rows.Scan(
				&item.IdeaID,
				&item.Title,
				&item.Description,
				&item.Problem,
				&item.Solution,
				&item.TargetMarket,
				&item.UniqueValueProposition,
				&item.BusinessModel,
				&item.Competitors,
				&item.Status,
				&item.OwnerID,
				&item.CreatedAt,
				&item.UpdatedAt,
				&owner.FirstName,
				&owner.LastName,
				&owner.Email,
			)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}

			item.Owner = &owner
			results = append(results, item)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "ideaRepository.FindIdeas").
			Int64("owner_id", filter.OwnerID).
			Str("status", string(filter.Status)).
			Str("search", filter.Search).
			Msg("failed to list ideas")
		return nil, err
	}

	return results, nil
}

// CountIdeas returns the total number of ideas matching the filter,
// ignoring its pagination window. Used to compute the page count returned
// alongside listings.
func (p *ideaRepository) CountIdeas(ctx context.Context, filter models.IdeaFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountIdeasQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "ideaRepository.CountIdeas").
			Int64("owner_id", filter.OwnerID).
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	err = p.DB.withRetry(ctx, func() error {
		return p.DB.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		log.Err(err).
			Str("func", "ideaRepository.CountIdeas").
			Int64("owner_id", filter.OwnerID).
			Msg("failed to execute count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// FindIdeaByID retrieves a single idea by its identifier, regardless of
// owner, with the owner summary joined in. Ownership enforcement is
// deliberately left to the service layer so that a foreign idea yields 403
// rather than leaking existence through 404.
func (p *ideaRepository) FindIdeaByID(ctx context.Context, ideaID int64) (models.Idea, error) {
	log := logger.FromContext(ctx)

	var found models.Idea
	err := p.DB.withRetry(ctx, func() error {
		row := p.DB.QueryRowContext(ctx, findIdeaByID, ideaID)

		var scanErr error
		found, scanErr = scanIdeaWithOwner(row)
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Idea{}, ErrIdeaNotFound
		}

		log.Err(err).
			Str("func", "ideaRepository.FindIdeaByID").
			Int64("idea_id", ideaID).
			Msg("failed to scan idea row")
		return models.Idea{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateIdea overwrites the mutable fields of an existing idea and returns
// the stored result. IdeaID and OwnerID are never written: ownership is
// immutable after creation.
func (p *ideaRepository) UpdateIdea(ctx context.Context, idea models.Idea) (models.Idea, error) {
	log := logger.FromContext(ctx)

	var updated models.Idea
	err := p.DB.withRetry(ctx, func() error {
		row := p.DB.QueryRowContext(ctx, updateIdea,
			idea.Title,
			idea.Description,
			idea.Problem,
			idea.Solution,
			idea.TargetMarket,
			idea.UniqueValueProposition,
			idea.BusinessModel,
			idea.Competitors,
			idea.Status,
			idea.IdeaID,
		)

		var scanErr error
		updated, scanErr = scanIdea(row)
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Idea{}, ErrIdeaNotFound
		}

		log.Err(err).
			Str("func", "ideaRepository.UpdateIdea").
			Int64("idea_id", idea.IdeaID).
			Msg("failed to update idea")
		return models.Idea{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteIdea removes an idea by its identifier.
//
// Returns [ErrIdeaNotFound] when no row was affected, so the caller can
// distinguish an already-gone idea from a successful removal.
func (p *ideaRepository) DeleteIdea(ctx context.Context, ideaID int64) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := p.DB.withRetry(ctx, func() error {
		result, execErr := p.DB.ExecContext(ctx, deleteIdea, ideaID)
		if execErr != nil {
			return execErr
		}

		var countErr error
		affected, countErr = result.RowsAffected()
		return countErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "ideaRepository.DeleteIdea").
			Int64("idea_id", ideaID).
			Msg("failed to delete idea")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrIdeaNotFound
	}

	return nil
}

// scanIdea reads one idea row in the canonical [ideaColumns] order from a
// single-row query result.
func scanIdea(row *sql.Row) (models.Idea, error) {
	var idea models.Idea

	err := row.Scan(
		&idea.IdeaID,
		&idea.Title,
		&idea.Description,
		&idea.Problem,
		&idea.Solution,
		&idea.TargetMarket,
		&idea.UniqueValueProposition,
		&idea.BusinessModel,
		&idea.Competitors,
		&idea.Status,
		&idea.OwnerID,
		&idea.CreatedAt,
		&idea.UpdatedAt,
	)
	if err != nil {
		return models.Idea{}, err
	}

	return idea, nil
}

// scanIdeaWithOwner reads one idea row in [ideaListColumns] order,
// populating the joined owner summary.
func scanIdeaWithOwner(row *sql.Row) (models.Idea, error) {
	var idea models.Idea
	var owner models.IdeaOwner

	err := row.Scan(
		&idea.IdeaID,
		&idea.Title,
		&idea.Description,
		&idea.Problem,
		&idea.Solution,
		&idea.TargetMarket,
		&idea.UniqueValueProposition,
		&idea.BusinessModel,
		&idea.Competitors,
		&idea.Status,
		&idea.OwnerID,
		&idea.CreatedAt,
		&idea.UpdatedAt,
		&owner.FirstName,
		&owner.LastName,
		&owner.Email,
	)
	if err != nil {
		return models.Idea{}, err
	}

	idea.Owner = &owner
	return idea, nil
}
