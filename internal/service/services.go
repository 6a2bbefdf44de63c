package service

import (
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	ContactService ContactService
	AppInfoService AppInfoService
}

// NewServices wires every service over storages. Auth and contact services
// validate their input before touching the store.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		ContactService: NewContactValidationService(validator).
			Wrap(NewContactService(storages.ContactRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
