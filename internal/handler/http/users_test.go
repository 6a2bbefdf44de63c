package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// ── register ────────────────────────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	th := newTestHandler(t)
	th.auth.EXPECT().Register(gomock.Any(), models.RegisterUserRequest{
		Username: "alice", Name: "Alice", Password: "password1",
	}).Return(models.User{Username: "alice", Name: "Alice", Password: "$2a$10$hash"}, nil)

	rr := th.serve(http.MethodPost, "/api/users", `{"username":"alice","name":"Alice","password":"password1"}`, false)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"User registered","data":{"username":"alice","name":"Alice"}}`, rr.Body.String())
}

func TestRegister_Conflict(t *testing.T) {
	th := newTestHandler(t)
	th.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrUsernameAlreadyExists)

	rr := th.serve(http.MethodPost, "/api/users", `{"username":"alice","name":"Alice","password":"password1"}`, false)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.False(t, decodeEnvelope(t, rr, nil).Success)
}

func TestRegister_MalformedJSON(t *testing.T) {
	th := newTestHandler(t)
	th.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	rr := th.serve(http.MethodPost, "/api/users", `{"username":`, false)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeEnvelope(t, rr, nil)
	assert.Equal(t, "Validation error", env.Message)
	assert.Len(t, env.Errors, 1)
}

func TestRegister_ValidationError(t *testing.T) {
	th := newTestHandler(t)
	th.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.User{}, validators.NewValidationError("username is a required field", "password is a required field"))

	rr := th.serve(http.MethodPost, "/api/users", `{}`, false)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{"username is a required field", "password is a required field"}, decodeEnvelope(t, rr, nil).Errors)
}

// ── login ───────────────────────────────────────────────────────────────────

func TestLogin_ReturnsToken(t *testing.T) {
	th := newTestHandler(t)
	th.auth.EXPECT().Login(gomock.Any(), models.LoginUserRequest{Username: "alice", Password: "password1"}).Return(alice, nil)

	rr := th.serve(http.MethodPost, "/api/users/login", `{"username":"alice","password":"password1"}`, false)

	require.Equal(t, http.StatusOK, rr.Code)
	var user models.User
	decodeEnvelope(t, rr, &user)
	require.NotNil(t, user.Token)
	assert.Equal(t, testToken, *user.Token)
}

func TestLogin_WrongCredentials(t *testing.T) {
	th := newTestHandler(t)
	th.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

	rr := th.serve(http.MethodPost, "/api/users/login", `{"username":"alice","password":"nope"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Username or password is wrong", decodeEnvelope(t, rr, nil).Message)
}

// ── /api/users/me ───────────────────────────────────────────────────────────

func TestGetCurrentUser_HidesToken(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()

	rr := th.serve(http.MethodGet, "/api/users/me", "", true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"User fetched","data":{"username":"alice","name":"Alice"}}`, rr.Body.String())
}

func TestUpdateCurrentUser(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.auth.EXPECT().UpdateUser(gomock.Any(), alice, models.UpdateUserRequest{Name: strPtr("Alice Cooper")}).
		Return(models.User{Username: "alice", Name: "Alice Cooper"}, nil)

	rr := th.serve(http.MethodPatch, "/api/users/me", `{"name":"Alice Cooper"}`, true)

	assert.Equal(t, http.StatusOK, rr.Code)
	var user models.User
	decodeEnvelope(t, rr, &user)
	assert.Equal(t, "Alice Cooper", user.Name)
}

func TestLogout(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.auth.EXPECT().Logout(gomock.Any(), alice).Return(nil)

	rr := th.serve(http.MethodDelete, "/api/users/me", "", true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Logout success"}`, rr.Body.String())
}

// TestHandlers_WithoutUserInContext checks the guard used when a protected
// handler is mounted without the authorization middleware.
func TestHandlers_WithoutUserInContext(t *testing.T) {
	th := newTestHandler(t)

	handlers := map[string]http.HandlerFunc{
		"getCurrentUser":    th.getCurrentUser,
		"updateCurrentUser": th.updateCurrentUser,
		"logout":            th.logout,
		"createContact":     th.createContact,
		"getContact":        th.getContact,
		"updateContact":     th.updateContact,
		"removeContact":     th.removeContact,
		"searchContacts":    th.searchContacts,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			rr := serveBare(handler)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}
