package mailjet

import (
	"fmt"
	"net/http"
	"strings"
)

// TransportError reports a failure before any HTTP response was
// received: connection refused, timeout, TLS failure or a truncated
// body read. It is never retried by the client.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mailjet: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderError is a non-2xx HTTP response successfully decoded from
// the provider's error envelope. The envelope fields are loosely typed;
// Raw retains the response body (truncated to the client's body limit)
// for diagnosis when the structured fields are empty.
type ProviderError struct {
	StatusCode   int
	ErrorInfo    string
	ErrorMessage string
	Raw          string
}

func (e *ProviderError) Error() string {
	message := e.ErrorMessage
	if message == "" {
		message = strings.TrimSpace(e.Raw)
	}
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("mailjet: api error (HTTP %d): %s", e.StatusCode, message)
}

// DecodeError reports a response body that does not match the expected
// schema for its status class. Body carries the raw bytes as received.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("mailjet: undecodable response (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// errorEnvelope mirrors the provider's error body. Fields beyond these
// vary per API version and are deliberately ignored.
type errorEnvelope struct {
	ErrorInfo    string `json:"ErrorInfo"`
	ErrorMessage string `json:"ErrorMessage"`
	StatusCode   int    `json:"StatusCode"`
}
