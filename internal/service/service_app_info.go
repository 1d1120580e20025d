package service

import (
	"context"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
