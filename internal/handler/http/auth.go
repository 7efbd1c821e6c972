package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/internal/utils"
	"github.com/MKhiriev/idea-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.UserResponse{
		Status:  models.StatusSuccess,
		Message: "User registered successfully",
		User:    registeredUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Msg("user login failed")
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", foundUser.UserID).Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Status:  models.StatusSuccess,
		Message: "Login successful",
		Token:   token.String(),
		User:    foundUser,
	}, http.StatusOK)
}

// me returns the profile of the authenticated caller. The identity is
// placed in the context by the auth middleware, so a missing value means
// the route was wired without it. The full record is re-read from the
// store because the context identity carries no timestamps.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	currentUser, err := h.services.AuthService.CurrentUser(ctx, identity.UserID)
	if err != nil {
		log.Err(err).Int64("id", identity.UserID).Msg("profile lookup failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Status: models.StatusSuccess,
		User:   currentUser,
	}, http.StatusOK)
}
