package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
)

func TestWriteError_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation error lists messages",
			err:        fmt.Errorf("invalid contact: %w", validators.NewValidationError("firstName is a required field", "email must be a valid email address")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Validation error","errors":["firstName is a required field","email must be a valid email address"]}`,
		},
		{
			name:       "unauthorized",
			err:        service.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"message":"Unauthorized"}`,
		},
		{
			name:       "invalid credentials",
			err:        service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"message":"Username or password is wrong"}`,
		},
		{
			name:       "duplicate username",
			err:        service.ErrUsernameAlreadyExists,
			wantStatus: http.StatusConflict,
			wantBody:   `{"success":false,"message":"Username already exists"}`,
		},
		{
			name:       "contact not found",
			err:        fmt.Errorf("wrapped: %w", service.ErrContactNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"message":"Contact is not found"}`,
		},
		{
			name:       "store failure hides detail",
			err:        fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("relation contacts does not exist")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
