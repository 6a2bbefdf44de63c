package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// ContactValidationService checks request payloads before handing them to
// the wrapped ContactService.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService(validator validators.Validator) ContactServiceWrapper {
	return &ContactValidationService{
		validator: validator,
	}
}

func (v *ContactValidationService) Create(ctx context.Context, owner models.User, req models.CreateContactRequest) (models.Contact, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Contact{}, fmt.Errorf("invalid contact: %w", err)
	}

	return v.inner.Create(ctx, owner, req)
}

func (v *ContactValidationService) Get(ctx context.Context, owner models.User, id string) (models.Contact, error) {
	return v.inner.Get(ctx, owner, id)
}

func (v *ContactValidationService) Update(ctx context.Context, owner models.User, req models.UpdateContactRequest) (models.Contact, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Contact{}, fmt.Errorf("invalid contact update: %w", err)
	}

	return v.inner.Update(ctx, owner, req)
}

func (v *ContactValidationService) Remove(ctx context.Context, owner models.User, id string) error {
	return v.inner.Remove(ctx, owner, id)
}

func (v *ContactValidationService) Search(ctx context.Context, owner models.User, req models.SearchContactRequest) (models.Page[models.Contact], error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Page[models.Contact]{}, fmt.Errorf("invalid search request: %w", err)
	}

	return v.inner.Search(ctx, owner, req)
}

func (v *ContactValidationService) Wrap(wrapped ContactService) ContactService {
	v.inner = wrapped
	return v
}
