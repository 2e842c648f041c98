package models

// CreateUserRequest is the body of POST /users.
//
// Fields are pointers so that a missing field can be told apart from its
// zero value during validation.
type CreateUserRequest struct {
	// ID is the caller-assigned identifier of the new user.
	ID *int64 `json:"id" validate:"required,gte=0"`

	// Name is the display name; blank names are rejected.
	Name *string `json:"name" validate:"required,notblank"`

	// Age is the user's age in full years.
	Age *int `json:"age" validate:"required,gte=0"`
}

// User converts the request into a [User]. Missing fields become zero
// values, so callers are expected to validate the request first.
func (r CreateUserRequest) User() User {
	var u User
	if r.ID != nil {
		u.ID = *r.ID
	}
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Age != nil {
		u.Age = *r.Age
	}

	return u
}
