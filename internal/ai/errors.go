package ai

import "errors"

var (
	// ErrUnauthorized indicates the API key is missing, invalid, or not
	// entitled to the requested model.
	ErrUnauthorized = errors.New("completion api rejected credentials")

	// ErrRateLimited indicates the completion API returned 429.
	ErrRateLimited = errors.New("completion api rate limit exceeded")

	// ErrUnavailable indicates the completion endpoint is unreachable.
	ErrUnavailable = errors.New("completion api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("completion request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid model output format")
)
