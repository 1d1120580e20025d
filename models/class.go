package models

// Class is a group of students the reports are filed against.
// Archived classes stay in the database but can no longer be referenced
// by new report entities.
type Class struct {
	// ID is the server-assigned identifier of the class.
	ID int64 `json:"id"`

	// Name is the display name of the class (e.g. "Piano beginners").
	Name string `json:"name"`

	// AgeGroup describes the target age of the class (e.g. "7-9").
	AgeGroup string `json:"ageGroup"`

	// Description is an optional free-form text.
	Description string `json:"description,omitempty"`

	// IsArchived marks classes that were removed from the active list.
	IsArchived bool `json:"isArchived"`
}

// TableName returns the name of the database table
// associated with the Class model.
func (c Class) TableName() string {
	return "classes"
}
