package models

import "time"

// Contact is an address-book entry owned by exactly one user.
type Contact struct {
	// ID is a UUID assigned by the service on creation.
	ID string `json:"id"`

	// Username is the owner. Never serialized and never changes.
	Username string `json:"-"`

	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`

	// CreatedAt orders contacts in search results.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// CreateContactRequest is the body of POST /api/contacts.
type CreateContactRequest struct {
	FirstName string  `json:"firstName" validate:"required,min=3,max=255"`
	LastName  *string `json:"lastName,omitempty" validate:"omitnil,min=3,max=255"`
	Email     *string `json:"email,omitempty" validate:"omitnil,max=255,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitnil,min=9,max=15"`
}

// UpdateContactRequest is the body of PUT /api/contacts/{contactId}; ID comes
// from the path. Absent fields are left unchanged.
type UpdateContactRequest struct {
	ID        string  `json:"-" validate:"required,uuid"`
	FirstName *string `json:"firstName,omitempty" validate:"omitnil,min=3,max=255"`
	LastName  *string `json:"lastName,omitempty" validate:"omitnil,min=3,max=255"`
	Email     *string `json:"email,omitempty" validate:"omitnil,max=255,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitnil,min=9,max=15"`
}

// ContactUpdate is a partial update of a stored contact scoped to its
// owner. Only non-nil fields are written.
type ContactUpdate struct {
	ID        string
	Username  string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// IsEmpty reports whether the update changes nothing.
func (u ContactUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.Phone == nil
}
