package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/idea-vault/internal/config"
	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/internal/service"
	"github.com/MKhiriev/idea-vault/internal/store"
	"github.com/MKhiriev/idea-vault/internal/utils"
	"github.com/MKhiriev/idea-vault/internal/validators"
	"github.com/MKhiriev/idea-vault/models"
)

var errorStatusMap = map[error]int{
	errInvalidJSON:                 http.StatusBadRequest,
	errInvalidIdeaID:               http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	store.ErrEmailAlreadyExists:    http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrForbidden:               http.StatusForbidden,

	store.ErrIdeaNotFound: http.StatusNotFound,
	store.ErrUserNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var verr *validators.ValidationErrors
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError converts err into the JSON error envelope and writes it with
// the mapped status code. Validation failures are expanded into per-field
// messages; internal errors are masked with a generic message in
// production.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	response := models.ErrorResponse{
		Status:  models.StatusError,
		Message: err.Error(),
	}

	var verr *validators.ValidationErrors
	if errors.As(err, &verr) {
		response.Message = "validation failed"
		response.Errors = verr.Fields
	}

	if status == http.StatusInternalServerError && h.environment == config.EnvProduction {
		response.Message = http.StatusText(http.StatusInternalServerError)
	}

	if _, werr := utils.WriteJSON(w, response, status); werr != nil {
		log.Err(werr).Msg("writing error response failed")
	}
}
