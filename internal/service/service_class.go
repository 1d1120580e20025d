package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/store"
	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

type classService struct {
	classRepository store.ClassRepository
	logger          *logger.Logger
}

func NewClassService(classRepository store.ClassRepository, logger *logger.Logger) ClassService {
	return &classService{classRepository: classRepository, logger: logger}
}

func (s *classService) Create(ctx context.Context, input validators.Input) (int64, error) {
	class := classFromInput(input)
	if class.Name == "" || class.AgeGroup == "" {
		return 0, ErrInvalidDataProvided
	}

	id, err := s.classRepository.Add(ctx, class)
	if err != nil {
		return 0, fmt.Errorf("error creating class: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("class_id", id).Msg("class created")
	return id, nil
}

func (s *classService) FindByID(ctx context.Context, id int64) (models.Class, error) {
	if id <= 0 {
		return models.Class{}, store.ErrClassNotFound
	}

	return s.classRepository.FindByID(ctx, id)
}

func (s *classService) List(ctx context.Context) ([]models.Class, int, error) {
	classes, err := s.classRepository.FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing classes: %w", err)
	}

	count, err := s.classRepository.FindCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting classes: %w", err)
	}

	return classes, count, nil
}

// Update replaces name, age group and description of an active class.
func (s *classService) Update(ctx context.Context, id int64, input validators.Input) error {
	class := classFromInput(input)
	if class.Name == "" || class.AgeGroup == "" {
		return ErrInvalidDataProvided
	}
	class.ID = id

	return s.classRepository.Update(ctx, class)
}

func (s *classService) Archive(ctx context.Context, id int64) error {
	if err := s.classRepository.Archive(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("class_id", id).Msg("class archived")
	return nil
}
