// Package respond renders JSON responses and maps error kinds onto
// HTTP status codes.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dreamnest/dreamnest-api/internal/schema"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error writes a client-facing error body.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]any{"error": msg})
}

// ValidationError writes a 422 response carrying the field-level errors
// from a schema validation failure.
func ValidationError(w http.ResponseWriter, err error) {
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	JSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": verr.FieldErrors,
	})
}
