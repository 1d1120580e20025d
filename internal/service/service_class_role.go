package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/store"
	"github.com/MKhiriev/go-class-reports/internal/validators"
)

type classRoleService struct {
	classRoleRepository store.ClassRoleRepository
	logger              *logger.Logger
}

func NewClassRoleService(classRoleRepository store.ClassRoleRepository, logger *logger.Logger) ClassRoleService {
	return &classRoleService{classRoleRepository: classRoleRepository, logger: logger}
}

func (s *classRoleService) Create(ctx context.Context, input validators.Input) (int64, error) {
	role, err := classRoleFromInput(input)
	if err != nil {
		return 0, err
	}
	if role.Name == "" || role.PaymentPerHour < 0 {
		return 0, ErrInvalidDataProvided
	}

	id, err := s.classRoleRepository.Add(ctx, role)
	if err != nil {
		return 0, fmt.Errorf("error creating class role: %w", err)
	}

	return id, nil
}
