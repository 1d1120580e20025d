package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/mock"
	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

func TestClassRoleService_Create(t *testing.T) {
	tests := []struct {
		name    string
		payment any
		want    float64
	}{
		{name: "json number", payment: json.Number("12.5"), want: 12.5},
		{name: "form string", payment: "0", want: 0},
		{name: "float", payment: 30.0, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockClassRoleRepository(gomock.NewController(t))
			svc := NewClassRoleService(repo, logger.Nop())

			repo.EXPECT().
				Add(gomock.Any(), models.ClassRole{Name: "Instructor", PaymentPerHour: tt.want}).
				Return(int64(1), nil)

			id, err := svc.Create(context.Background(), validators.Input{"name": "Instructor", "paymentPerHour": tt.payment})
			require.NoError(t, err)
			assert.Equal(t, int64(1), id)
		})
	}
}

func TestClassRoleService_Create_InvalidPayment(t *testing.T) {
	repo := mock.NewMockClassRoleRepository(gomock.NewController(t))
	svc := NewClassRoleService(repo, logger.Nop())

	_, err := svc.Create(context.Background(), validators.Input{"name": "Instructor", "paymentPerHour": "abc"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(context.Background(), validators.Input{"name": "Instructor", "paymentPerHour": -1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
