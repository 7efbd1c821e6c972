// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/internal/store"
	"github.com/MKhiriev/idea-vault/internal/validators"
	"github.com/MKhiriev/idea-vault/models"
)

// ideaService is the concrete implementation of IdeaService.
//
// The access rule is enforced here, not in the repository: single-record
// operations load the idea by id regardless of owner and then apply
// canAccess, so a foreign record fails with ErrForbidden while a missing
// one keeps the repository's ErrIdeaNotFound. Listing is different — the
// filter is pre-scoped to the caller, so other users' ideas are simply
// absent from the result rather than rejected.
type ideaService struct {
	ideaRepository store.IdeaRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewIdeaService constructs a new IdeaService wired to the given
// IdeaRepository.
func NewIdeaService(ideaRepository store.IdeaRepository, validator validators.Validator, log *logger.Logger) IdeaService {
	return &ideaService{
		ideaRepository: ideaRepository,
		validator:      validator,
		logger:         log,
	}
}

// canAccess reports whether identity may read or mutate idea: the owner
// always may, admins may regardless of ownership.
func canAccess(identity models.Identity, idea models.Idea) bool {
	return idea.OwnerID == identity.UserID || identity.IsAdmin()
}

// ListIdeas returns one page of the caller's ideas plus the total count
// matching the filter. The filter is normalized and force-scoped to the
// caller before it reaches the repository, so the result can never leak
// another user's records.
func (s *ideaService) ListIdeas(ctx context.Context, identity models.Identity, filter models.IdeaFilter) ([]models.Idea, int64, error) {
	log := logger.FromContext(ctx)

	filter.OwnerID = identity.UserID
	filter.Normalize()

	ideas, err := s.ideaRepository.FindIdeas(ctx, filter)
	if err != nil {
		log.Err(err).Int64("owner_id", filter.OwnerID).Msg("idea search failed")
		return nil, 0, fmt.Errorf("idea search failed: %w", err)
	}

	total, err := s.ideaRepository.CountIdeas(ctx, filter)
	if err != nil {
		log.Err(err).Int64("owner_id", filter.OwnerID).Msg("idea count failed")
		return nil, 0, fmt.Errorf("idea count failed: %w", err)
	}

	return ideas, total, nil
}

// GetIdea loads a single idea and applies the access rule.
//
// Returns the idea or:
//   - a wrapped store.ErrIdeaNotFound when no such record exists.
//   - ErrForbidden when the record belongs to someone else and the caller
//     is not an admin.
func (s *ideaService) GetIdea(ctx context.Context, identity models.Identity, ideaID int64) (models.Idea, error) {
	log := logger.FromContext(ctx)

	idea, err := s.ideaRepository.FindIdeaByID(ctx, ideaID)
	if err != nil {
		log.Err(err).Int64("idea_id", ideaID).Msg("idea search by id failed")
		return models.Idea{}, fmt.Errorf("idea search by id failed: %w", err)
	}

	if !canAccess(identity, idea) {
		log.Warn().Int64("idea_id", ideaID).Int64("user_id", identity.UserID).Msg("access to foreign idea denied")
		return models.Idea{}, ErrForbidden
	}

	return idea, nil
}

// CreateIdea validates the input and persists a new idea owned by the
// caller. The owner is always taken from the identity, never from the
// payload, and an empty status defaults to draft.
func (s *ideaService) CreateIdea(ctx context.Context, identity models.Identity, input models.IdeaInput) (models.Idea, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Int64("user_id", identity.UserID).Msg("idea payload failed validation")
		return models.Idea{}, err
	}

	if input.Status == "" {
		input.Status = models.StatusDraft
	}

	var idea models.Idea
	input.Apply(&idea)
	idea.OwnerID = identity.UserID

	createdIdea, err := s.ideaRepository.CreateIdea(ctx, idea)
	if err != nil {
		log.Err(err).Int64("owner_id", identity.UserID).Msg("idea creation ended with error")
		return models.Idea{}, fmt.Errorf("idea creation ended with error: %w", err)
	}

	// The INSERT returns no join; the creator is always the owner.
	createdIdea.Owner = &models.IdeaOwner{
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Email:     identity.Email,
	}

	return createdIdea, nil
}

// UpdateIdea validates the input, applies the access rule against the
// stored record, and overwrites its mutable fields. Ownership and the
// creation timestamp never change.
func (s *ideaService) UpdateIdea(ctx context.Context, identity models.Identity, ideaID int64, input models.IdeaInput) (models.Idea, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Int64("idea_id", ideaID).Msg("idea payload failed validation")
		return models.Idea{}, err
	}

	idea, err := s.ideaRepository.FindIdeaByID(ctx, ideaID)
	if err != nil {
		log.Err(err).Int64("idea_id", ideaID).Msg("idea search by id failed")
		return models.Idea{}, fmt.Errorf("idea search by id failed: %w", err)
	}

	if !canAccess(identity, idea) {
		log.Warn().Int64("idea_id", ideaID).Int64("user_id", identity.UserID).Msg("update of foreign idea denied")
		return models.Idea{}, ErrForbidden
	}

	if input.Status == "" {
		input.Status = idea.Status
	}
	input.Apply(&idea)

	updatedIdea, err := s.ideaRepository.UpdateIdea(ctx, idea)
	if err != nil {
		log.Err(err).Int64("idea_id", ideaID).Msg("idea update ended with error")
		return models.Idea{}, fmt.Errorf("idea update ended with error: %w", err)
	}

	// Ownership never changes; keep the owner summary from the stored load.
	updatedIdea.Owner = idea.Owner

	return updatedIdea, nil
}

// DeleteIdea applies the access rule against the stored record and then
// removes it.
func (s *ideaService) DeleteIdea(ctx context.Context, identity models.Identity, ideaID int64) error {
	log := logger.FromContext(ctx)

	idea, err := s.ideaRepository.FindIdeaByID(ctx, ideaID)
	if err != nil {
		log.Err(err).Int64("idea_id", ideaID).Msg("idea search by id failed")
		return fmt.Errorf("idea search by id failed: %w", err)
	}

	if !canAccess(identity, idea) {
		log.Warn().Int64("idea_id", ideaID).Int64("user_id", identity.UserID).Msg("deletion of foreign idea denied")
		return ErrForbidden
	}

	if err := s.ideaRepository.DeleteIdea(ctx, ideaID); err != nil {
		log.Err(err).Int64("idea_id", ideaID).Msg("idea deletion ended with error")
		return fmt.Errorf("idea deletion ended with error: %w", err)
	}

	return nil
}
