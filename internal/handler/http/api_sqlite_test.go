//go:build cgo

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// apiClient drives the real router over an in-memory SQLite database.
type apiClient struct {
	t      *testing.T
	router http.Handler
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file::memory:",
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, config.StructuredConfig{
		App: config.App{PasswordHashCost: 4, Version: "test"},
	}, logger.Nop())
	require.NoError(t, err)

	return &apiClient{t: t, router: NewHandler(services, config.Server{}, logger.Nop()).Init()}
}

func (c *apiClient) do(method, target, token, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rr := httptest.NewRecorder()
	c.router.ServeHTTP(rr, req)
	return rr
}

// signUp registers and logs in username, returning the session token.
func (c *apiClient) signUp(username string) string {
	c.t.Helper()

	rr := c.do(http.MethodPost, "/api/users", "", fmt.Sprintf(`{"username":%q,"name":"Some Name","password":"password1"}`, username))
	require.Equal(c.t, http.StatusCreated, rr.Code, rr.Body.String())

	return c.login(username, "password1")
}

func (c *apiClient) login(username, password string) string {
	c.t.Helper()

	rr := c.do(http.MethodPost, "/api/users/login", "", fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	require.Equal(c.t, http.StatusOK, rr.Code, rr.Body.String())

	var user models.User
	decodeEnvelope(c.t, rr, &user)
	require.NotNil(c.t, user.Token)
	return *user.Token
}

func (c *apiClient) createContact(token, body string) models.Contact {
	c.t.Helper()

	rr := c.do(http.MethodPost, "/api/contacts", token, body)
	require.Equal(c.t, http.StatusCreated, rr.Code, rr.Body.String())

	var contact models.Contact
	decodeEnvelope(c.t, rr, &contact)
	return contact
}

func TestAPI_DuplicateRegistration(t *testing.T) {
	api := newAPIClient(t)
	api.signUp("alice")

	rr := api.do(http.MethodPost, "/api/users", "", `{"username":"alice","name":"Another","password":"password2"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAPI_LongPasswords(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		newPassword string
	}{
		{name: "100 characters", password: strings.Repeat("p", 100), newPassword: strings.Repeat("q", 100)},
		{name: "255 multibyte characters", password: strings.Repeat("ж", 255), newPassword: strings.Repeat("ё", 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newAPIClient(t)

			rr := api.do(http.MethodPost, "/api/users", "", fmt.Sprintf(`{"username":"alice","name":"Alice","password":%q}`, tt.password))
			require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

			token := api.login("alice", tt.password)

			rr = api.do(http.MethodPatch, "/api/users/me", token, fmt.Sprintf(`{"password":%q}`, tt.newPassword))
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			api.login("alice", tt.newPassword)
		})
	}
}

func TestAPI_LoginRevokesPreviousToken(t *testing.T) {
	api := newAPIClient(t)
	first := api.signUp("alice")
	second := api.login("alice", "password1")

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/users/me", first, "").Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/users/me", second, "").Code)
}

func TestAPI_LogoutRevokesToken(t *testing.T) {
	api := newAPIClient(t)
	token := api.signUp("alice")

	require.Equal(t, http.StatusOK, api.do(http.MethodDelete, "/api/users/me", token, "").Code)

	missing := api.do(http.MethodGet, "/api/users/me", "", "")
	stale := api.do(http.MethodGet, "/api/users/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, stale.Code)
	assert.Equal(t, missing.Body.String(), stale.Body.String())
}

func TestAPI_ContactLifecycle(t *testing.T) {
	api := newAPIClient(t)
	token := api.signUp("alice")

	created := api.createContact(token, `{"firstName":"Bob","lastName":"Builder","email":"bob@example.com"}`)
	require.NotEmpty(t, created.ID)

	rr := api.do(http.MethodPut, "/api/contacts/"+created.ID, token, `{"phone":"+123456789"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updated models.Contact
	decodeEnvelope(t, rr, &updated)
	assert.Equal(t, "Bob", updated.FirstName)
	assert.Equal(t, "Builder", *updated.LastName)
	assert.Equal(t, "bob@example.com", *updated.Email)
	assert.Equal(t, "+123456789", *updated.Phone)

	require.Equal(t, http.StatusOK, api.do(http.MethodDelete, "/api/contacts/"+created.ID, token, "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/contacts/"+created.ID, token, "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/api/contacts/"+created.ID, token, "").Code)
}

func TestAPI_ContactsAreOwnerScoped(t *testing.T) {
	api := newAPIClient(t)
	alice := api.signUp("alice")
	bob := api.signUp("bob")

	contact := api.createContact(alice, `{"firstName":"Carol"}`)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/contacts/"+contact.ID, bob, "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPut, "/api/contacts/"+contact.ID, bob, `{"firstName":"Mallory"}`).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/api/contacts/"+contact.ID, bob, "").Code)

	rr := api.do(http.MethodGet, "/api/contacts?name=carol", bob, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var page models.Page[models.Contact]
	decodeEnvelope(t, rr, &page)
	assert.Empty(t, page.Items)

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/contacts/"+contact.ID, alice, "").Code)
}

func TestAPI_SearchPagination(t *testing.T) {
	api := newAPIClient(t)
	token := api.signUp("alice")

	for i := range 15 {
		api.createContact(token, fmt.Sprintf(`{"firstName":"Friend %02d"}`, i))
	}

	rr := api.do(http.MethodGet, "/api/contacts?page=2&size=10", token, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var page models.Page[models.Contact]
	decodeEnvelope(t, rr, &page)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, models.Paging{Size: 10, CurrentPage: 2, TotalPages: 2}, page.Paging)
}

func TestAPI_SearchPageBeyondOffsetRange(t *testing.T) {
	api := newAPIClient(t)
	token := api.signUp("alice")
	api.createContact(token, `{"firstName":"Bob"}`)

	tests := []struct {
		query string
		page  int
		size  int
	}{
		{query: "page=9223372036854775807&size=100", page: 9223372036854775807, size: 100},
		{query: "page=922337203685477581&size=20", page: 922337203685477581, size: 20},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rr := api.do(http.MethodGet, "/api/contacts?"+tt.query, token, "")
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

			var page models.Page[models.Contact]
			decodeEnvelope(t, rr, &page)
			assert.Empty(t, page.Items)
			assert.Equal(t, models.Paging{Size: tt.size, CurrentPage: tt.page, TotalPages: 1}, page.Paging)
		})
	}
}

func TestAPI_EmptyFirstName(t *testing.T) {
	api := newAPIClient(t)
	token := api.signUp("alice")

	rr := api.do(http.MethodPost, "/api/contacts", token, `{"firstName":""}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeEnvelope(t, rr, nil)
	require.NotEmpty(t, env.Errors)
	assert.Contains(t, env.Errors[0], "firstName")
}
