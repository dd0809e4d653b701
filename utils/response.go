package utils

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the envelope every handler renders: success flag, a
// human-readable message, and an optional payload.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// WriteJSON renders the envelope with the given status code.
func WriteJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// GetStringValue unwraps a nullable column value, empty when NULL.
func GetStringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
