package models

// Response is the envelope of every HTTP response body.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// TypedResponse is the client-side view of [Response] with a concrete
// payload type.
type TypedResponse[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    T        `json:"data"`
	Errors  []string `json:"errors,omitempty"`
}
