package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-contact-keeper/internal/validators"
)

const maxRequestBodySize = 1 << 20

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched. Malformed JSON is reported as a single-message validation error.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))

	if err := decoder.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return validators.NewValidationError(typeErr.Field + " has an invalid type")
		}
		return validators.NewValidationError("request body is not valid JSON")
	}

	return nil
}

// optionalQuery returns a pointer to the query value of key, or nil when
// the parameter is absent or empty.
func optionalQuery(query url.Values, key string) *string {
	value := query.Get(key)
	if value == "" {
		return nil
	}
	return &value
}

// intQuery parses the query value of key, returning def when it is absent.
func intQuery(query url.Values, key string, def int) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validators.NewValidationError(key + " must be a number")
	}
	return value, nil
}
