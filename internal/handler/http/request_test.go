package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    models.CreateContactRequest
		wantMsg string
	}{
		{name: "valid", body: `{"firstName":"Bob","email":"bob@example.com"}`, want: models.CreateContactRequest{FirstName: "Bob", Email: strPtr("bob@example.com")}},
		{name: "empty body", body: ``},
		{name: "malformed", body: `{"firstName":`, wantMsg: "request body is not valid JSON"},
		{name: "wrong type", body: `{"firstName":42}`, wantMsg: "firstName has an invalid type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.CreateContactRequest
			err := decodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)), &got)

			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var vErr *validators.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, []string{tt.wantMsg}, vErr.Messages)
		})
	}
}

func TestIntQuery(t *testing.T) {
	query := url.Values{"page": {"3"}, "size": {"ten"}}

	page, err := intQuery(query, "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	missing, err := intQuery(query, "other", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, missing)

	_, err = intQuery(query, "size", 10)
	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"size must be a number"}, vErr.Messages)
}

func TestOptionalQuery(t *testing.T) {
	query := url.Values{"name": {"bob"}, "email": {""}}

	require.NotNil(t, optionalQuery(query, "name"))
	assert.Equal(t, "bob", *optionalQuery(query, "name"))
	assert.Nil(t, optionalQuery(query, "email"))
	assert.Nil(t, optionalQuery(query, "phone"))
}
