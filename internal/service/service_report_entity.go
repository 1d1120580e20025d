package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/store"
	"github.com/MKhiriev/go-class-reports/internal/utils"
	"github.com/MKhiriev/go-class-reports/internal/validators"
)

type reportEntityService struct {
	reportEntityRepository store.ReportEntityRepository
	logger                 *logger.Logger
}

func NewReportEntityService(reportEntityRepository store.ReportEntityRepository, logger *logger.Logger) ReportEntityService {
	return &reportEntityService{reportEntityRepository: reportEntityRepository, logger: logger}
}

// Create stores a report entity owned by the user found in ctx.
func (s *reportEntityService) Create(ctx context.Context, input validators.Input) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}

	entity, err := reportEntityFromInput(input, userID)
	if err != nil {
		return 0, err
	}
	if entity.HoursSpend <= 0 {
		return 0, ErrInvalidDataProvided
	}

	id, err := s.reportEntityRepository.Add(ctx, entity)
	if err != nil {
		return 0, fmt.Errorf("error creating report entity: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int64("report_entity_id", id).
		Int64("class_id", entity.ClassID).
		Msg("report entity created")
	return id, nil
}
