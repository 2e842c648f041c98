package models

// AdultAge is the minimal age at which a user is considered of age.
const AdultAge = 18

// User represents a stored user record.
// Records are created once and never updated; they are removed by ID.
type User struct {
	// ID is the caller-assigned unique identifier of the user.
	ID int64 `json:"id" db:"id"`

	// Name is the display name of the user.
	Name string `json:"name" db:"name"`

	// Age is the user's age in full years.
	Age int `json:"age" db:"age"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserResponse is the outbound projection of a [User].
// IsOfAge is derived at response time and is never persisted.
type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	IsOfAge bool   `json:"isOfAge"`
}

// IsOfAge reports whether age reaches [AdultAge].
func IsOfAge(age int) bool {
	return age >= AdultAge
}

// NewUserResponse projects u into a [UserResponse].
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Age:     u.Age,
		IsOfAge: IsOfAge(u.Age),
	}
}

// NewUserResponses projects every user keeping the input order.
// The result is never nil so that it encodes as a JSON array.
func NewUserResponses(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, NewUserResponse(u))
	}

	return responses
}
