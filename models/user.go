package models

import "time"

// User is an account of the contact directory. Username is the primary key
// and never changes after registration.
type User struct {
	// Username is the unique, immutable login name.
	Username string `json:"username"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password holds the bcrypt hash of the password. Never serialized.
	Password string `json:"-"`

	// Token is the current session token; nil when logged out.
	Token *string `json:"token,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterUserRequest is the body of POST /api/users.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Name     string `json:"name" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

// LoginUserRequest is the body of POST /api/users/login.
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

// UpdateUserRequest is the body of PATCH /api/users/me. Absent fields are
// left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitnil,min=3,max=255"`
	Password *string `json:"password,omitempty" validate:"omitnil,min=8,max=255"`
}

// UserUpdate is a partial update of a stored user. Only non-nil fields are
// written.
type UserUpdate struct {
	Username string
	Name     *string
	Password *string
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Password == nil
}
