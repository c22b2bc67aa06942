package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-member-portal/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
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

// WriteProblem writes a structured problem document with the given status,
// generic title, and optional validation message list. The content type is
// "application/problem+json" so API clients can distinguish error bodies
// from regular payloads.
func WriteProblem(w http.ResponseWriter, r *http.Request, statusCode int, title string, errs []string) (int, error) {
	problem := models.ProblemDetails{
		Status:   statusCode,
		Title:    title,
		Instance: r.URL.Path,
		Errors:   errs,
	}

	jsonData, err := json.Marshal(problem)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing problem document to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
