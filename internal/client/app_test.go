package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/models"
)

const contactID = "01928f4e-8a2b-7c3d-9e4f-5a6b7c8d9e0f"

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	out := &bytes.Buffer{}

	return NewApp(serverAdapter, out, logger.Nop()), serverAdapter, out
}

func strPtr(s string) *string { return &s }

// ── dispatch ────────────────────────────────────────────────────────────────

func TestRun_NoCommand(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrMissingArgs)
	assert.Contains(t, err.Error(), "commands:")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"frobnicate"})
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"frobnicate"`)
}

func TestRun_BadFlag(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"search", "-page", "two"})
	assert.Error(t, err)
}

func TestUsage_Sorted(t *testing.T) {
	app, _, _ := newTestApp(t)

	usage := app.Usage()
	assert.Less(t, bytes.Index([]byte(usage), []byte("create")), bytes.Index([]byte(usage), []byte("version")))
}

// ── users ───────────────────────────────────────────────────────────────────

func TestRun_Register(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().
		Register(gomock.Any(), models.RegisterUserRequest{Username: "alice", Name: "Alice", Password: "secret123"}).
		Return(models.User{Username: "alice", Name: "Alice"}, nil)

	err := app.Run(context.Background(), []string{"register", "-username", "alice", "-name", "Alice", "-password", "secret123"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","name":"Alice"}`, out.String())
}

func TestRun_Login_PrintsToken(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	gomock.InOrder(
		serverAdapter.EXPECT().
			Login(gomock.Any(), models.LoginUserRequest{Username: "alice", Password: "secret123"}).
			Return(models.User{Username: "alice"}, nil),
		serverAdapter.EXPECT().Token().Return("tok-1"),
	)

	err := app.Run(context.Background(), []string{"login", "-username", "alice", "-password", "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1\n", out.String())
}

func TestRun_Login_Error(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, adapter.ErrUnauthorized)

	err := app.Run(context.Background(), []string{"login", "-username", "alice", "-password", "nope"})

	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, out.String())
}

func TestRun_UpdateMe_OnlyGivenFields(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)

	serverAdapter.EXPECT().
		UpdateCurrentUser(gomock.Any(), models.UpdateUserRequest{Name: strPtr("Alice B")}).
		Return(models.User{Username: "alice", Name: "Alice B"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"update-me", "-name", "Alice B"}))
}

func TestRun_UpdateMe_EmptyValueIsSent(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)

	serverAdapter.EXPECT().
		UpdateCurrentUser(gomock.Any(), models.UpdateUserRequest{Password: strPtr("")}).
		Return(models.User{}, adapter.ErrBadRequest)

	err := app.Run(context.Background(), []string{"update-me", "-password", ""})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestRun_MeAndLogout(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().CurrentUser(gomock.Any()).Return(models.User{Username: "alice", Name: "Alice"}, nil)
	serverAdapter.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"me"}))
	require.NoError(t, app.Run(context.Background(), []string{"logout"}))
	assert.Contains(t, out.String(), "logged out")
}

func TestRun_Version(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().Version(gomock.Any()).Return("v1.0.0", nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "v1.0.0\n", out.String())
}

// ── contacts ────────────────────────────────────────────────────────────────

func TestRun_Create(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().
		CreateContact(gomock.Any(), models.CreateContactRequest{FirstName: "Bob", Email: strPtr("bob@example.com")}).
		Return(models.Contact{ID: contactID, FirstName: "Bob", Email: strPtr("bob@example.com")}, nil)

	err := app.Run(context.Background(), []string{"create", "-first-name", "Bob", "-email", "bob@example.com"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), contactID)
}

func TestRun_Get_RequiresID(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"get"})
	assert.ErrorIs(t, err, ErrMissingArgs)
}

func TestRun_Get_NotFound(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)

	serverAdapter.EXPECT().GetContact(gomock.Any(), contactID).Return(models.Contact{}, adapter.ErrNotFound)

	err := app.Run(context.Background(), []string{"get", contactID})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestRun_Update_FlagsBeforeID(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)

	serverAdapter.EXPECT().
		UpdateContact(gomock.Any(), models.UpdateContactRequest{ID: contactID, Phone: strPtr("+15551234567")}).
		Return(models.Contact{ID: contactID, FirstName: "Bob"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"update", "-phone", "+15551234567", contactID}))
}

func TestRun_Delete(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().RemoveContact(gomock.Any(), contactID).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete", contactID}))
	assert.Equal(t, "deleted "+contactID+"\n", out.String())
}

func TestRun_Delete_PropagatesError(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)

	boom := errors.New("connection refused")
	serverAdapter.EXPECT().RemoveContact(gomock.Any(), contactID).Return(boom)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"delete", contactID}), boom)
}

func TestRun_Search_PrintsTable(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().
		SearchContacts(gomock.Any(), models.SearchContactRequest{Name: strPtr("bo"), Page: 2, Size: 5}).
		Return(models.NewPage([]models.Contact{{ID: contactID, FirstName: "Bob"}}, 2, 5, 6), nil)

	err := app.Run(context.Background(), []string{"search", "-name", "bo", "-page", "2", "-size", "5"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "FIRST NAME")
	assert.Contains(t, out.String(), contactID)
	assert.Contains(t, out.String(), "page 2 of 2 (size 5)")
}
