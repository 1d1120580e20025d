package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

// stringValue renders a raw input value as a string. Missing values are "".
func stringValue(input validators.Input, field string) string {
	switch v := input[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func classRoleFromInput(input validators.Input) (models.ClassRole, error) {
	payment, ok := validators.ToFloat(input[validators.FieldPaymentPerHour])
	if !ok {
		return models.ClassRole{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, validators.FieldPaymentPerHour)
	}

	return models.ClassRole{
		Name:           strings.TrimSpace(stringValue(input, validators.FieldName)),
		PaymentPerHour: payment,
	}, nil
}

func reportEntityFromInput(input validators.Input, userID int64) (models.ReportEntity, error) {
	entity := models.ReportEntity{UserID: userID}

	if raw := input[validators.FieldReportID]; !validators.IsAbsent(raw) {
		id, ok := validators.ToInt64(raw)
		if !ok {
			return models.ReportEntity{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, validators.FieldReportID)
		}
		entity.ReportID = id
	}

	var ok bool
	if entity.ClassID, ok = validators.ToInt64(input[validators.FieldClassID]); !ok {
		return models.ReportEntity{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, validators.FieldClassID)
	}
	if entity.ClassRoleID, ok = validators.ToInt64(input[validators.FieldClassRoleID]); !ok {
		return models.ReportEntity{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, validators.FieldClassRoleID)
	}
	if entity.Date, ok = validators.ParseDate(input[validators.FieldDate]); !ok {
		return models.ReportEntity{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, validators.FieldDate)
	}
	if entity.HoursSpend, ok = validators.ToFloat(input[validators.FieldHoursSpend]); !ok {
		return models.ReportEntity{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, validators.FieldHoursSpend)
	}

	return entity, nil
}

func userFromInput(input validators.Input) (models.User, error) {
	roleID, ok := validators.ToInt64(input[validators.FieldRoleID])
	if !ok {
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, validators.FieldRoleID)
	}

	return models.User{
		Username:  strings.TrimSpace(stringValue(input, validators.FieldUsername)),
		Email:     strings.TrimSpace(stringValue(input, validators.FieldEmail)),
		Password:  stringValue(input, validators.FieldPassword),
		FirstName: strings.TrimSpace(stringValue(input, validators.FieldFirstName)),
		LastName:  strings.TrimSpace(stringValue(input, validators.FieldLastName)),
		RoleID:    roleID,
	}, nil
}

func classFromInput(input validators.Input) models.Class {
	return models.Class{
		Name:        strings.TrimSpace(stringValue(input, validators.FieldName)),
		AgeGroup:    strings.TrimSpace(stringValue(input, validators.FieldAgeGroup)),
		Description: strings.TrimSpace(stringValue(input, validators.FieldDescription)),
	}
}
