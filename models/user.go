package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"userId"`

	// Username is the unique login of the user.
	Username string `json:"username"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Password holds the plaintext password on the way in and the bcrypt
	// hash once the user has been persisted. Never serialized.
	Password string `json:"-"`

	// FirstName and LastName are display attributes.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// RoleID references the user's role (employee, admin, ...).
	RoleID int64 `json:"roleId"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
