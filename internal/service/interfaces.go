package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns accounts and their single active session token.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error)

	// Login verifies credentials and issues a fresh token, replacing any
	// previous one. The returned user carries the new token.
	Login(ctx context.Context, req models.LoginUserRequest) (models.User, error)
	Logout(ctx context.Context, user models.User) error
	UpdateUser(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error)

	// Authenticate resolves a session token to its holder.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// ContactService manages contacts on behalf of their owner. A contact that
// exists but belongs to another user is reported as not found.
type ContactService interface {
	Create(ctx context.Context, owner models.User, req models.CreateContactRequest) (models.Contact, error)
	Get(ctx context.Context, owner models.User, id string) (models.Contact, error)
	Update(ctx context.Context, owner models.User, req models.UpdateContactRequest) (models.Contact, error)
	Remove(ctx context.Context, owner models.User, id string) error
	Search(ctx context.Context, owner models.User, req models.SearchContactRequest) (models.Page[models.Contact], error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
