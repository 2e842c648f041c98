package service

import (
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of the given repositories. The
// user service is decorated with input validation.
func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserService(repositories.UserRepository, logger)

	return &Services{
		UserService:    NewUserValidationService().Wrap(userService),
		AppInfoService: appInfoService,
	}, nil
}
