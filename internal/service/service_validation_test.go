package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-class-reports/internal/mock"
	"github.com/MKhiriev/go-class-reports/internal/utils"
	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

func newTestEngine(t *testing.T) (*validators.Engine, *mock.MockExistenceLookup, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	lookup := mock.NewMockExistenceLookup(ctrl)
	return validators.NewEngine(validators.WithLookup(lookup)), lookup, ctrl
}

func TestClassRoleValidationService_RejectsInvalidInput(t *testing.T) {
	engine, _, ctrl := newTestEngine(t)
	inner := mock.NewMockClassRoleService(ctrl)
	svc := NewClassRoleValidationService(engine).Wrap(inner)

	_, err := svc.Create(context.Background(), validators.Input{"paymentPerHour": "abc"})

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ErrorIs(t, err, validators.ErrValidationFailed)
	assert.Equal(t, []string{
		validators.MsgClassRoleNameNotDefined,
		validators.MsgClassRolePaymentNotNumber,
	}, vErr.Messages())
}

func TestClassRoleValidationService_PassesValidInput(t *testing.T) {
	engine, _, ctrl := newTestEngine(t)
	inner := mock.NewMockClassRoleService(ctrl)
	svc := NewClassRoleValidationService(engine).Wrap(inner)

	input := validators.Input{"name": "Instructor", "paymentPerHour": "20"}
	inner.EXPECT().Create(gomock.Any(), input).Return(int64(5), nil)

	id, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestReportEntityValidationService_ArchivedClass(t *testing.T) {
	engine, lookup, ctrl := newTestEngine(t)
	inner := mock.NewMockReportEntityService(ctrl)
	svc := NewReportEntityValidationService(engine).Wrap(inner)

	lookup.EXPECT().Exists(gomock.Any(), validators.KindClass, "2").Return(false, nil)
	lookup.EXPECT().Exists(gomock.Any(), validators.KindClassRole, "3").Return(true, nil)

	_, err := svc.Create(utils.WithIdentity(context.Background(), 1, 2), validators.Input{
		"classId":     "2",
		"classRoleId": "3",
		"date":        "2026-09-14",
		"hoursSpend":  "2",
	})

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{validators.MsgClassIDNotExisting}, vErr.Messages())
}

func TestReportEntityValidationService_LookupFailure(t *testing.T) {
	engine, lookup, ctrl := newTestEngine(t)
	inner := mock.NewMockReportEntityService(ctrl)
	svc := NewReportEntityValidationService(engine).Wrap(inner)

	dbErr := errors.New("connection refused")
	lookup.EXPECT().Exists(gomock.Any(), validators.KindClass, gomock.Any()).Return(false, dbErr)

	_, err := svc.Create(context.Background(), validators.Input{
		"classId":     "2",
		"classRoleId": "3",
		"date":        "2026-09-14",
		"hoursSpend":  "2",
	})

	var infraErr *validators.InfrastructureError
	require.ErrorAs(t, err, &infraErr)
	assert.ErrorIs(t, err, validators.ErrLookupFailed)
	assert.ErrorIs(t, err, dbErr)
}

func TestAuthValidationService_Register(t *testing.T) {
	engine, lookup, ctrl := newTestEngine(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService(engine).Wrap(inner)

	lookup.EXPECT().Exists(gomock.Any(), validators.KindUserUsername, "jdoe").Return(false, nil)
	lookup.EXPECT().Exists(gomock.Any(), validators.KindUserEmail, "jdoe@example.com").Return(true, nil)

	_, err := svc.RegisterUser(context.Background(), registrationInputRaw())

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{validators.MsgEmailNotUnique}, vErr.Messages())
}

func TestAuthValidationService_LoginAndTokens(t *testing.T) {
	engine, _, ctrl := newTestEngine(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService(engine).Wrap(inner)

	_, err := svc.Login(context.Background(), validators.Input{"username": "jdoe"})
	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{validators.MsgPasswordNotDefined}, vErr.Messages())

	input := validators.Input{"username": "jdoe", "password": "s3cret"}
	inner.EXPECT().Login(gomock.Any(), input).Return(models.User{UserID: 1}, nil)
	inner.EXPECT().CreateToken(gomock.Any(), models.User{UserID: 1}).Return(models.Token{SignedString: "t"}, nil)
	inner.EXPECT().ParseToken(gomock.Any(), "t").Return(models.Token{UserID: 1}, nil)

	user, err := svc.Login(context.Background(), input)
	require.NoError(t, err)
	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(1), parsed.UserID)
}

func TestClassValidationService(t *testing.T) {
	engine, _, ctrl := newTestEngine(t)
	inner := mock.NewMockClassService(ctrl)
	svc := NewClassValidationService(engine).Wrap(inner)

	_, err := svc.Create(context.Background(), validators.Input{"name": "Piano", "ageGroup": "  "})
	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{validators.MsgClassAgeGroupNotDefined}, vErr.Messages())

	err = svc.Update(context.Background(), 1, validators.Input{})
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Messages(), 2)

	inner.EXPECT().List(gomock.Any()).Return(nil, 0, nil)
	inner.EXPECT().FindByID(gomock.Any(), int64(1)).Return(models.Class{ID: 1}, nil)
	inner.EXPECT().Archive(gomock.Any(), int64(1)).Return(nil)

	_, _, err = svc.List(context.Background())
	require.NoError(t, err)
	_, err = svc.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, svc.Archive(context.Background(), 1))
}

func registrationInputRaw() validators.Input {
	return validators.Input{
		"username":  "jdoe",
		"email":     "jdoe@example.com",
		"password":  "s3cret",
		"firstName": "John",
		"lastName":  "Doe",
		"roleId":    "2",
	}
}
