package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// AuthValidationService checks request payloads before handing them to the
// wrapped AuthService. Validation failures carry *validators.ValidationError.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validator,
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("invalid registration request: %w", err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("invalid login request: %w", err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Logout(ctx context.Context, user models.User) error {
	return v.inner.Logout(ctx, user)
}

func (v *AuthValidationService) UpdateUser(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("invalid user update request: %w", err)
	}

	return v.inner.UpdateUser(ctx, user, req)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, token string) (models.User, error) {
	return v.inner.Authenticate(ctx, token)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
