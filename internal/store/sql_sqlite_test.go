package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.DB{
		Driver:        config.DriverSQLite,
		DSN:           "file:" + filepath.Join(t.TempDir(), "reports.db"),
		LookupTimeout: time.Second,
	}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func TestSQLiteStorages_EndToEnd(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)

	user, err := s.UserRepository.CreateUser(ctx, models.User{
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		Password:  "hash",
		FirstName: "John",
		LastName:  "Doe",
		RoleID:    2,
	})
	require.NoError(t, err)
	assert.Positive(t, user.UserID)
	assert.False(t, user.CreatedAt.IsZero())

	_, err = s.UserRepository.CreateUser(ctx, models.User{
		Username:  "jdoe",
		Email:     "other@example.com",
		Password:  "hash",
		FirstName: "J",
		LastName:  "D",
		RoleID:    2,
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	found, err := s.UserRepository.FindUserByUsername(ctx, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)

	classID, err := s.ClassRepository.Add(ctx, models.Class{Name: "Piano", AgeGroup: "7-9"})
	require.NoError(t, err)

	roleID, err := s.ClassRoleRepository.Add(ctx, models.ClassRole{Name: "Instructor", PaymentPerHour: 20})
	require.NoError(t, err)

	entityID, err := s.ReportEntityRepository.Add(ctx, models.ReportEntity{
		UserID:      user.UserID,
		ClassID:     classID,
		ClassRoleID: roleID,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		HoursSpend:  2,
	})
	require.NoError(t, err)
	assert.Positive(t, entityID)

	exists, err := s.ExistenceLookup.Exists(ctx, validators.KindClass, classID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.ExistenceLookup.Exists(ctx, validators.KindUserEmail, " jdoe@example.com ")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.ExistenceLookup.Exists(ctx, validators.KindUserUsername, "ghost")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.ClassRepository.Archive(ctx, classID))
	assert.ErrorIs(t, s.ClassRepository.Archive(ctx, classID), ErrClassNotFound)

	exists, err = s.ExistenceLookup.Exists(ctx, validators.KindClass, classID)
	require.NoError(t, err)
	assert.False(t, exists, "archived classes must not be found")

	count, err := s.ClassRepository.FindCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	archived, err := s.ClassRepository.FindByID(ctx, classID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)
}

func TestSQLiteStorages_ForeignKeys(t *testing.T) {
	s := newSQLiteStorages(t)

	_, err := s.ReportEntityRepository.Add(context.Background(), models.ReportEntity{
		UserID:      100,
		ClassID:     200,
		ClassRoleID: 300,
		Date:        time.Now(),
		HoursSpend:  1,
	})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(assert.AnError))
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
