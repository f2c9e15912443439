package llm

import "errors"

var (
	// ErrRateLimited indicates the provider rejected the call with a
	// rate-limit response. Transient; eligible for retry.
	ErrRateLimited = errors.New("llm provider rate limited")

	// ErrProviderAPI indicates a server-side provider failure (5xx).
	// Transient; eligible for retry.
	ErrProviderAPI = errors.New("llm provider api error")

	// ErrUnavailable indicates the Ollama server is unreachable.
	ErrUnavailable = errors.New("llm server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the response could not be parsed into
	// the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been used up.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)

// IsTransient reports whether err is worth retrying. Only rate-limit and
// provider API failures qualify; everything else propagates immediately.
func IsTransient(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrProviderAPI)
}
