// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

// The validation services check the raw request body against its schema
// before delegating to the wrapped service. A failed check is returned as
// *validators.ValidationError, a lookup failure as
// *validators.InfrastructureError; the inner service is not called.

type AuthValidationService struct {
	inner        AuthService
	registration validators.Validator
	login        validators.Validator
}

func NewAuthValidationService(engine *validators.Engine) AuthServiceWrapper {
	return &AuthValidationService{
		registration: validators.NewSchemaValidator(engine, validators.UserRegistrationSchema),
		login:        validators.NewSchemaValidator(engine, validators.LoginSchema),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, input validators.Input) (models.User, error) {
	if err := v.registration.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before registration: %w", err)
	}

	return v.inner.RegisterUser(ctx, input)
}

func (v *AuthValidationService) Login(ctx context.Context, input validators.Input) (models.User, error) {
	if err := v.login.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("error during login validation: %w", err)
	}

	return v.inner.Login(ctx, input)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

type ClassValidationService struct {
	inner     ClassService
	validator validators.Validator
}

func NewClassValidationService(engine *validators.Engine) ClassServiceWrapper {
	return &ClassValidationService{
		validator: validators.NewSchemaValidator(engine, validators.ClassSchema),
	}
}

func (v *ClassValidationService) Create(ctx context.Context, input validators.Input) (int64, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return 0, fmt.Errorf("error during class validation before saving: %w", err)
	}

	return v.inner.Create(ctx, input)
}

func (v *ClassValidationService) FindByID(ctx context.Context, id int64) (models.Class, error) {
	return v.inner.FindByID(ctx, id)
}

func (v *ClassValidationService) List(ctx context.Context) ([]models.Class, int, error) {
	return v.inner.List(ctx)
}

func (v *ClassValidationService) Update(ctx context.Context, id int64, input validators.Input) error {
	if err := v.validator.Validate(ctx, input); err != nil {
		return fmt.Errorf("error during class validation before update: %w", err)
	}

	return v.inner.Update(ctx, id, input)
}

func (v *ClassValidationService) Archive(ctx context.Context, id int64) error {
	return v.inner.Archive(ctx, id)
}

func (v *ClassValidationService) Wrap(inner ClassService) ClassService {
	v.inner = inner
	return v
}

type ClassRoleValidationService struct {
	inner     ClassRoleService
	validator validators.Validator
}

func NewClassRoleValidationService(engine *validators.Engine) ClassRoleServiceWrapper {
	return &ClassRoleValidationService{
		validator: validators.NewSchemaValidator(engine, validators.ClassRoleSchema),
	}
}

func (v *ClassRoleValidationService) Create(ctx context.Context, input validators.Input) (int64, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return 0, fmt.Errorf("error during class role validation before saving: %w", err)
	}

	return v.inner.Create(ctx, input)
}

func (v *ClassRoleValidationService) Wrap(inner ClassRoleService) ClassRoleService {
	v.inner = inner
	return v
}

type ReportEntityValidationService struct {
	inner     ReportEntityService
	validator validators.Validator
}

func NewReportEntityValidationService(engine *validators.Engine) ReportEntityServiceWrapper {
	return &ReportEntityValidationService{
		validator: validators.NewSchemaValidator(engine, validators.ReportEntitySchema),
	}
}

func (v *ReportEntityValidationService) Create(ctx context.Context, input validators.Input) (int64, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return 0, fmt.Errorf("error during report entity validation before saving: %w", err)
	}

	return v.inner.Create(ctx, input)
}

func (v *ReportEntityValidationService) Wrap(inner ReportEntityService) ReportEntityService {
	v.inner = inner
	return v
}
