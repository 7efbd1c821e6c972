package http

import (
	"net/http"

	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/internal/utils"
	"github.com/MKhiriev/idea-vault/models"
)

// health reports whether the service and its database are alive. It is
// public: load balancers probe it without credentials.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	response := models.HealthResponse{
		Status:   "ok",
		Database: "up",
	}
	statusCode := http.StatusOK

	if h.db == nil {
		response.Database = "unknown"
	} else if err := h.db.PingContext(r.Context()); err != nil {
		log.Err(err).Msg("database ping failed")
		response.Status = "degraded"
		response.Database = "down"
		statusCode = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, response, statusCode)
}
