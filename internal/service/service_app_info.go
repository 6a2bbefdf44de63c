package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// appInfoService reports static facts about the running server.
type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService returns ErrVersionIsNotSpecified when cfg carries no
// version; the server entrypoint fills it from build info beforehand.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("app info service created")

	return &appInfoService{
		version: cfg.Version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
