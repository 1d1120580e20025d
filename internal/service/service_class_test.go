package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/mock"
	"github.com/MKhiriev/go-class-reports/internal/store"
	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

func newTestClassService(t *testing.T) (ClassService, *mock.MockClassRepository) {
	t.Helper()
	repo := mock.NewMockClassRepository(gomock.NewController(t))
	return NewClassService(repo, logger.Nop()), repo
}

func TestClassService_Create(t *testing.T) {
	svc, repo := newTestClassService(t)

	repo.EXPECT().
		Add(gomock.Any(), models.Class{Name: "Piano", AgeGroup: "7-9", Description: "beginners"}).
		Return(int64(4), nil)

	id, err := svc.Create(context.Background(), validators.Input{
		"name":        " Piano ",
		"ageGroup":    "7-9",
		"description": "beginners",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestClassService_Create_MissingName(t *testing.T) {
	svc, _ := newTestClassService(t)

	_, err := svc.Create(context.Background(), validators.Input{"ageGroup": "7-9"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClassService_List(t *testing.T) {
	svc, repo := newTestClassService(t)
	classes := []models.Class{{ID: 1, Name: "Piano"}, {ID: 2, Name: "Guitar"}}

	gomock.InOrder(
		repo.EXPECT().FindAll(gomock.Any()).Return(classes, nil),
		repo.EXPECT().FindCount(gomock.Any()).Return(2, nil),
	)

	got, count, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, classes, got)
	assert.Equal(t, 2, count)
}

func TestClassService_List_Error(t *testing.T) {
	svc, repo := newTestClassService(t)

	repo.EXPECT().FindAll(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, _, err := svc.List(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestClassService_FindByID(t *testing.T) {
	svc, repo := newTestClassService(t)

	repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(models.Class{}, store.ErrClassNotFound)

	_, err := svc.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrClassNotFound)

	_, err = svc.FindByID(context.Background(), 0)
	assert.ErrorIs(t, err, store.ErrClassNotFound)
}

func TestClassService_UpdateAndArchive(t *testing.T) {
	svc, repo := newTestClassService(t)

	repo.EXPECT().Update(gomock.Any(), models.Class{ID: 3, Name: "Violin", AgeGroup: "5-7"}).Return(nil)
	repo.EXPECT().Archive(gomock.Any(), int64(3)).Return(store.ErrClassNotFound)

	require.NoError(t, svc.Update(context.Background(), 3, validators.Input{"name": "Violin", "ageGroup": "5-7"}))
	assert.ErrorIs(t, svc.Archive(context.Background(), 3), store.ErrClassNotFound)
}
