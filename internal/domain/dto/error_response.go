package dto

import "time"

// ErrorResponse is the uniform JSON body for failed requests.
type ErrorResponse struct {
	Message      string    `json:"message" example:"company not found"`
	ErrorDetails string    `json:"error,omitempty" example:"sql: no rows in result set"`
	Timestamp    time.Time `json:"timestamp" example:"2024-01-02T15:04:05Z"`
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// The inner error's message is included when err is non-nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can be returned
// where an error is expected.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
