package service

import (
	"fmt"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/store"
	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

// Services aggregates the application services. Every service that accepts
// request bodies is wrapped with its validation service.
type Services struct {
	AuthService         AuthService
	ClassService        ClassService
	ClassRoleService    ClassRoleService
	ReportEntityService ReportEntityService
	AppInfoService      AppInfoService
}

// NewServices builds the validation engine on the storages' existence lookup,
// registers every request schema and wires the services. A schema that
// needs an entity kind the lookup does not support fails here.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*Services, error) {
	engine := validators.NewEngine(
		validators.WithLookup(storages.ExistenceLookup),
		validators.WithConcurrency(cfg.Validation.Concurrency),
		validators.WithLogger(log),
	)
	if err := engine.Register(validators.Schemas()...); err != nil {
		return nil, fmt.Errorf("error registering validation schemas: %w", err)
	}

	return &Services{
		AuthService: NewAuthValidationService(engine).
			Wrap(NewAuthService(storages.UserRepository, cfg.App, log)),
		ClassService: NewClassValidationService(engine).
			Wrap(NewClassService(storages.ClassRepository, log)),
		ClassRoleService: NewClassRoleValidationService(engine).
			Wrap(NewClassRoleService(storages.ClassRoleRepository, log)),
		ReportEntityService: NewReportEntityValidationService(engine).
			Wrap(NewReportEntityService(storages.ReportEntityRepository, log)),
		AppInfoService: NewAppInfoService(buildInfo, log),
	}, nil
}
