// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/internal/utils"
	"github.com/MKhiriev/idea-vault/models"
)

func (h *Handler) listIdeas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	filter := filterFromQuery(r)

	ideas, total, err := h.services.IdeaService.ListIdeas(ctx, identity, filter)
	if err != nil {
		log.Err(err).Msg("idea listing failed")
		h.writeError(w, r, err)
		return
	}

	// filter was normalized by the service; recompute here for the envelope
	filter.Normalize()

	if ideas == nil {
		ideas = []models.Idea{}
	}

	utils.WriteJSON(w, models.IdeaListResponse{
		Status:     models.StatusSuccess,
		Data:       ideas,
		Pagination: models.NewPagination(filter.Page, filter.Limit, total),
	}, http.StatusOK)
}

func (h *Handler) getIdea(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	ideaID, err := ideaIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid idea id")
		h.writeError(w, r, err)
		return
	}

	idea, err := h.services.IdeaService.GetIdea(ctx, identity, ideaID)
	if err != nil {
		log.Err(err).Int64("idea_id", ideaID).Msg("idea retrieval failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.IdeaResponse{
		Status: models.StatusSuccess,
		Data:   idea,
	}, http.StatusOK)
}

func (h *Handler) createIdea(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var input models.IdeaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	createdIdea, err := h.services.IdeaService.CreateIdea(ctx, identity, input)
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("idea creation failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("idea_id", createdIdea.IdeaID).Int64("owner_id", createdIdea.OwnerID).Msg("idea created")

	utils.WriteJSON(w, models.IdeaResponse{
		Status:  models.StatusSuccess,
		Message: "Idea created successfully",
		Data:    createdIdea,
	}, http.StatusCreated)
}

func (h *Handler) updateIdea(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	ideaID, err := ideaIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid idea id")
		h.writeError(w, r, err)
		return
	}

	var input models.IdeaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	updatedIdea, err := h.services.IdeaService.UpdateIdea(ctx, identity, ideaID, input)
	if err != nil {
		log.Err(err).Int64("idea_id", ideaID).Msg("idea update failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.IdeaResponse{
		Status:  models.StatusSuccess,
		Message: "Idea updated successfully",
		Data:    updatedIdea,
	}, http.StatusOK)
}

func (h *Handler) deleteIdea(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	ideaID, err := ideaIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid idea id")
		h.writeError(w, r, err)
		return
	}

	if err := h.services.IdeaService.DeleteIdea(ctx, identity, ideaID); err != nil {
		log.Err(err).Int64("idea_id", ideaID).Msg("idea deletion failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("idea_id", ideaID).Msg("idea deleted")

	utils.WriteJSON(w, models.MessageResponse{
		Status:  models.StatusSuccess,
		Message: "Idea deleted successfully",
	}, http.StatusOK)
}

// ideaIDFromURL parses the {id} route parameter.
func ideaIDFromURL(r *http.Request) (int64, error) {
	ideaID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || ideaID < 1 {
		return 0, errInvalidIdeaID
	}
	return ideaID, nil
}

// filterFromQuery reads the optional listing parameters: page, limit,
// status, and search. Malformed numbers fall back to the defaults via
// IdeaFilter.Normalize.
func filterFromQuery(r *http.Request) models.IdeaFilter {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	return models.IdeaFilter{
		Page:   page,
		Limit:  limit,
		Status: models.IdeaStatus(query.Get("status")),
		Search: query.Get("search"),
	}
}
