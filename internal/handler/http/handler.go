package http

import (
	"time"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/service"
	"github.com/MKhiriev/go-class-reports/internal/utils"
)

type Handler struct {
	services *service.Services

	// employeeRoleID is the role allowed through the employee-only routes.
	employeeRoleID int64

	// requestTimeout bounds a single request; zero disables the limit.
	requestTimeout time.Duration

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		employeeRoleID: cfg.App.EmployeeRoleID,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
