package models

import "time"

// ReportEntity is a single line of a working-hours report: the time an
// employee spent in a class, in a given role, on a given date.
type ReportEntity struct {
	// ID is the server-assigned identifier of the entity.
	ID int64 `json:"id"`

	// UserID is the employee who filed the entity.
	UserID int64 `json:"userId"`

	// ReportID optionally links the entity to an existing report.
	// Zero means the entity is not attached to any report yet.
	ReportID int64 `json:"reportId,omitempty"`

	// ClassID references a non-archived class.
	ClassID int64 `json:"classId"`

	// ClassRoleID references the role the employee had in the class.
	ClassRoleID int64 `json:"classRoleId"`

	// Date is the day the hours were spent.
	Date time.Time `json:"date"`

	// HoursSpend is the strictly positive number of hours.
	HoursSpend float64 `json:"hoursSpend"`
}

// TableName returns the name of the database table
// associated with the ReportEntity model.
func (r ReportEntity) TableName() string {
	return "report_entities"
}
