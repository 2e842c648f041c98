package models

// Envelope is the uniform body of every users API response.
//
// Data holds either a payload (a [UserResponse] or a slice of them) or a
// human-readable message when the request failed or when the operation
// only reports an outcome.
type Envelope struct {
	// Success is true when the requested operation succeeded.
	Success bool `json:"success"`

	// Data is the payload or the message of the response.
	Data any `json:"data"`
}

// Success wraps data into a successful [Envelope].
func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Failure wraps message into a failed [Envelope].
func Failure(message string) Envelope {
	return Envelope{Success: false, Data: message}
}
