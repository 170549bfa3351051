package modeladapter

import "fmt"

// NetworkError reports a transport-level failure (DNS, connect, TLS, timeout,
// or context cancellation) that prevented an HTTP response from arriving.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError reports a non-2xx HTTP response from the provider API. Body holds
// the raw response body text; it is never decoded on this path.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: unexpected status %d: %s", e.StatusCode, e.Body)
}

// ParseError reports a response body that did not match the expected vendor
// shape, or a well-formed response with no extractable reply text.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Msg, e.Err)
	}
	return "parse error: " + e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError reports a missing or invalid configuration value.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Msg)
}
