package models

// ClassRole is the role an employee can have in a class
// (instructor, assistant, ...) together with its hourly payment.
type ClassRole struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	PaymentPerHour float64 `json:"paymentPerHour"`
}

// TableName returns the name of the database table
// associated with the ClassRole model.
func (c ClassRole) TableName() string {
	return "class_roles"
}
