package llm

import (
	"fmt"
)

// MissingCredentialError indicates no model credential is configured. It is
// raised before any network I/O and is not retryable without reconfiguration.
type MissingCredentialError struct{}

func (e *MissingCredentialError) Error() (msg string) {
	msg = "no OpenAI API key configured (set openai_api_key in config or OPENAI_API_KEY env var)"
	return msg
}

// ProviderError indicates the model call itself failed: network, auth, quota,
// or any non-200 response. The underlying message is surfaced verbatim.
type ProviderError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() (msg string) {
	if e.Err != nil {
		msg = fmt.Sprintf("model request failed: %v", e.Err)
		return msg
	}
	msg = fmt.Sprintf("model request failed with status %d: %s", e.StatusCode, e.Message)
	return msg
}

func (e *ProviderError) Unwrap() (err error) {
	err = e.Err
	return err
}

// ResponseFormatError indicates the model returned text that could not be
// parsed as JSON even after the brace-extraction fallback. Raw carries the
// full response body for operator inspection; the call is not retried.
type ResponseFormatError struct {
	Raw string
}

func (e *ResponseFormatError) Error() (msg string) {
	msg = "model response is not parseable as JSON"
	return msg
}
