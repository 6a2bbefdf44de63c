package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode and an
// "application/json" content type.
//
// If marshaling fails it responds with 500 Internal Server Error instead and
// returns the wrapped error. The int result is the number of body bytes written.
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

// WriteSuccess writes the standard success envelope carrying data.
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, data any) (int, error) {
	return WriteJSON(w, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	}, statusCode)
}

// WriteFailure writes the standard failure envelope. errs is omitted from the
// body when empty.
func WriteFailure(w http.ResponseWriter, statusCode int, message string, errs ...string) (int, error) {
	return WriteJSON(w, models.Response{
		Success: false,
		Message: message,
		Errors:  errs,
	}, statusCode)
}
