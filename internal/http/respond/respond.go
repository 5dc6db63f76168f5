// Package respond centralizes JSON response writing for handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/savu-app/savu-backend/internal/logging"
)

// JSON writes a payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Logger.WithError(err).Error("respond: encode payload failed")
	}
}

// Error writes the shared error shape: {"error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
