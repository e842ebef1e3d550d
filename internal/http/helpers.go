package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// decodeJSON parses the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// parsePositiveID parses a path or query value as a positive integer id.
func parsePositiveID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("must be a positive integer, got %q", raw)
	}
	return id, nil
}

// parseDate validates a YYYY-MM-DD calendar date and returns it unchanged.
func parseDate(raw string) (string, error) {
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", fmt.Errorf("must be a YYYY-MM-DD date, got %q", raw)
	}
	return raw, nil
}
