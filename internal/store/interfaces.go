package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-class-reports/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ClassRepository persists classes. Archived classes are kept but excluded
// from FindAll, FindCount, Update and Archive.
type ClassRepository interface {
	Add(ctx context.Context, class models.Class) (int64, error)
	FindByID(ctx context.Context, id int64) (models.Class, error)
	Update(ctx context.Context, class models.Class) error
	Archive(ctx context.Context, id int64) error
	FindCount(ctx context.Context) (int, error)
	FindAll(ctx context.Context) ([]models.Class, error)
}

// ClassRoleRepository persists class roles.
type ClassRoleRepository interface {
	Add(ctx context.Context, role models.ClassRole) (int64, error)
}

// ReportEntityRepository persists report entities.
type ReportEntityRepository interface {
	Add(ctx context.Context, entity models.ReportEntity) (int64, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
