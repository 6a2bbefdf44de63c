package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

const contactID = "0192f0c4-7a3e-7c1a-9d8b-2f4e6a1b3c5d"

func serveBare(handler http.HandlerFunc) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	return rr
}

// ── create ──────────────────────────────────────────────────────────────────

func TestCreateContact(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.contacts.EXPECT().Create(gomock.Any(), alice, models.CreateContactRequest{
		FirstName: "Bob", Phone: strPtr("+123456789"),
	}).Return(models.Contact{ID: contactID, Username: "alice", FirstName: "Bob", Phone: strPtr("+123456789")}, nil)

	rr := th.serve(http.MethodPost, "/api/contacts", `{"firstName":"Bob","phone":"+123456789"}`, true)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Contact created","data":{
		"id":"`+contactID+`","firstName":"Bob","lastName":null,"email":null,"phone":"+123456789"}}`, rr.Body.String())
}

// TestCreateContact_EmptyFirstName runs the real validator behind the mock
// so the message is the one clients see.
func TestCreateContact_EmptyFirstName(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.contacts.EXPECT().Create(gomock.Any(), alice, gomock.Any()).DoAndReturn(
		func(ctx any, _ models.User, req models.CreateContactRequest) (models.Contact, error) {
			return models.Contact{}, validators.NewRequestValidator().Validate(t.Context(), req)
		})

	rr := th.serve(http.MethodPost, "/api/contacts", `{"firstName":""}`, true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeEnvelope(t, rr, nil)
	require.NotEmpty(t, env.Errors)
	assert.Contains(t, env.Errors[0], "firstName")
}

// ── get ─────────────────────────────────────────────────────────────────────

func TestGetContact(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.contacts.EXPECT().Get(gomock.Any(), alice, contactID).Return(models.Contact{ID: contactID, FirstName: "Bob"}, nil)

	rr := th.serve(http.MethodGet, "/api/contacts/"+contactID, "", true)

	assert.Equal(t, http.StatusOK, rr.Code)
	var contact models.Contact
	decodeEnvelope(t, rr, &contact)
	assert.Equal(t, "Bob", contact.FirstName)
}

func TestGetContact_NotFound(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.contacts.EXPECT().Get(gomock.Any(), alice, "missing").Return(models.Contact{}, service.ErrContactNotFound)

	rr := th.serve(http.MethodGet, "/api/contacts/missing", "", true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Contact is not found"}`, rr.Body.String())
}

// ── update ──────────────────────────────────────────────────────────────────

// TestUpdateContact_IDFromPath checks that an id in the body is ignored.
func TestUpdateContact_IDFromPath(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.contacts.EXPECT().Update(gomock.Any(), alice, models.UpdateContactRequest{
		ID: contactID, Email: strPtr("bob@example.com"),
	}).Return(models.Contact{ID: contactID, FirstName: "Bob", Email: strPtr("bob@example.com")}, nil)

	rr := th.serve(http.MethodPut, "/api/contacts/"+contactID, `{"id":"other","email":"bob@example.com"}`, true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Contact updated", decodeEnvelope(t, rr, nil).Message)
}

// ── remove ──────────────────────────────────────────────────────────────────

func TestRemoveContact(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.contacts.EXPECT().Remove(gomock.Any(), alice, contactID).Return(nil)

	rr := th.serve(http.MethodDelete, "/api/contacts/"+contactID, "", true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Contact deleted"}`, rr.Body.String())
}

func TestRemoveContact_NotFound(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.contacts.EXPECT().Remove(gomock.Any(), alice, contactID).Return(service.ErrContactNotFound)

	rr := th.serve(http.MethodDelete, "/api/contacts/"+contactID, "", true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── search ──────────────────────────────────────────────────────────────────

func TestSearchContacts_Defaults(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.contacts.EXPECT().Search(gomock.Any(), alice, models.SearchContactRequest{Page: 1, Size: 10}).
		Return(models.NewPage([]models.Contact{{ID: contactID, FirstName: "Bob"}}, 1, 10, 1), nil)

	rr := th.serve(http.MethodGet, "/api/contacts", "", true)

	assert.Equal(t, http.StatusOK, rr.Code)
	var page models.Page[models.Contact]
	decodeEnvelope(t, rr, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.Paging{Size: 10, CurrentPage: 1, TotalPages: 1}, page.Paging)
}

func TestSearchContacts_Criteria(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.contacts.EXPECT().Search(gomock.Any(), alice, models.SearchContactRequest{
		Name: strPtr("bob"), Phone: strPtr("555"), Page: 2, Size: 5,
	}).Return(models.NewPage[models.Contact](nil, 2, 5, 6), nil)

	rr := th.serve(http.MethodGet, "/api/contacts?name=bob&phone=555&email=&page=2&size=5", "", true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"paging":{"size":5,"current_page":2,"total_page":2}`)
	assert.Contains(t, rr.Body.String(), `"data":[]`)
}

func TestSearchContacts_NonNumericPage(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized()
	th.contacts.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rr := th.serve(http.MethodGet, "/api/contacts?page=two", "", true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{"page must be a number"}, decodeEnvelope(t, rr, nil).Errors)
}
