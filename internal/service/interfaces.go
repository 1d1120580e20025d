package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

// AuthService registers users, checks credentials and issues tokens.
// RegisterUser and Login take the raw request body.
type AuthService interface {
	RegisterUser(ctx context.Context, input validators.Input) (models.User, error)
	Login(ctx context.Context, input validators.Input) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ClassService manages classes. List returns the active classes and their
// count; archived classes are only reachable through FindByID.
type ClassService interface {
	Create(ctx context.Context, input validators.Input) (int64, error)
	FindByID(ctx context.Context, id int64) (models.Class, error)
	List(ctx context.Context) ([]models.Class, int, error)
	Update(ctx context.Context, id int64, input validators.Input) error
	Archive(ctx context.Context, id int64) error
}

// ClassRoleService creates class roles.
type ClassRoleService interface {
	Create(ctx context.Context, input validators.Input) (int64, error)
}

// ReportEntityService records hours spent by the authenticated user.
type ReportEntityService interface {
	Create(ctx context.Context, input validators.Input) (int64, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
