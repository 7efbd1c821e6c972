package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it as the response body with the
// given status code and an application/json content type. Every API
// envelope (success, error, and health responses alike) goes out through
// here.
//
// Marshaling happens before the status line is written, so a failure can
// still answer 500 instead of a half-written body.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
