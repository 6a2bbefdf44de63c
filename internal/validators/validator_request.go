package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// RequestValidator validates the request payloads of package models against
// their `validate` tags and renders violations in English.
type RequestValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewRequestValidator builds a ready [RequestValidator]. It panics only if
// the bundled English translations fail to register.
func NewRequestValidator() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(fmt.Sprintf("registering validator translations: %v", err))
	}

	return &RequestValidator{
		validate:   validate,
		translator: translator,
	}
}

// Validate checks obj and returns a *ValidationError holding every violated
// constraint. When fields are given only those struct fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.RegisterUserRequest, *models.RegisterUserRequest,
		models.LoginUserRequest, *models.LoginUserRequest,
		models.UpdateUserRequest, *models.UpdateUserRequest,
		models.CreateContactRequest, *models.CreateContactRequest,
		models.UpdateContactRequest, *models.UpdateContactRequest,
		models.SearchContactRequest, *models.SearchContactRequest:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validating %T: %w", obj, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fe.Translate(v.translator))
	}

	return NewValidationError(messages...)
}

// jsonFieldName names fields in messages after their JSON key; fields hidden
// from JSON fall back to the lower-cased Go name.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(field.Name)
	}
	return name
}
