package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// today is the calendar day key shared by the generator, the game and the
// scoreboard. UTC, so every client sees the same board roll over together.
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// requestDate resolves the day a request targets: the "date" query
// parameter when present, today otherwise.
func requestDate(r *http.Request) (string, error) {
	return parseDate(r.URL.Query().Get("date"))
}

func parseDate(date string) (string, error) {
	if date == "" {
		return today(), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", err
	}
	return date, nil
}
