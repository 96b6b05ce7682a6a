package handlers

import (
	"encoding/json"
	"net/http"
)

// messageBody is the error/message response envelope
type messageBody struct {
	Message string `json:"message"`
}

// respondJSON serializes the payload as-is; no envelope is added, matching
// the wire format the front-end consumes (raw arrays, items and keys).
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondMessage sends a `{"message": ...}` body with the given status
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageBody{Message: message})
}
