package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"testing"
)

func TestConnectionErrorType(t *testing.T) {
	tests := []struct {
		name     string
		errType  ConnectionErrorType
		expected string
	}{
		{"unknown type", ConnectionErrorUnknown, "Connection error"},
		{"TLS type", ConnectionErrorTLS, "TLS certificate error"},
		{"network type", ConnectionErrorNetwork, "Network error"},
		{"timeout type", ConnectionErrorTimeout, "Connection timeout"},
		{"DNS type", ConnectionErrorDNS, "DNS resolution error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errType.String()
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestConnectionError(t *testing.T) {
	t.Run("error message names type, endpoint, and reason", func(t *testing.T) {
		err := &ConnectionError{
			Endpoint: "http://localhost:12345/api",
			Type:     ConnectionErrorNetwork,
			Reason:   errors.New("connection refused"),
		}
		msg := err.Error()

		if !strings.Contains(msg, "Network error") {
			t.Error("expected error message to contain the error type")
		}
		if !strings.Contains(msg, "http://localhost:12345/api") {
			t.Error("expected error message to contain the endpoint")
		}
		if !strings.Contains(msg, "connection refused") {
			t.Error("expected error message to contain the reason")
		}
	})

	t.Run("Unwrap returns underlying error", func(t *testing.T) {
		reason := errors.New("connection refused")
		err := &ConnectionError{Endpoint: "http://localhost:12345/api", Reason: reason}

		if errors.Unwrap(err) != reason {
			t.Errorf("expected errors.Unwrap to return %v", reason)
		}
	})

	t.Run("errors.Is works with wrapped error", func(t *testing.T) {
		connErr := &ConnectionError{Endpoint: "http://localhost:12345/api"}
		wrappedErr := fmt.Errorf("wrapped: %w", connErr)

		if !errors.Is(wrappedErr, &ConnectionError{}) {
			t.Error("expected errors.Is to find wrapped ConnectionError")
		}
	})

	t.Run("Is returns false for different type", func(t *testing.T) {
		err := &ConnectionError{Endpoint: "http://localhost:12345/api"}

		if err.Is(errors.New("some error")) {
			t.Error("expected Is to return false for different type")
		}
	})
}

func TestStatusError(t *testing.T) {
	t.Run("error message includes status and body", func(t *testing.T) {
		err := &StatusError{
			StatusCode: 404,
			Endpoint:   "https://serv.amazingmarvin.com/api",
			Body:       "item not found\n",
		}
		msg := err.Error()

		if !strings.Contains(msg, "404") {
			t.Error("expected error message to contain the status code")
		}
		if !strings.Contains(msg, "item not found") {
			t.Error("expected error message to contain the response body")
		}
	})

	t.Run("empty body falls back to status text", func(t *testing.T) {
		err := &StatusError{StatusCode: 500}

		if !strings.Contains(err.Error(), "Internal Server Error") {
			t.Errorf("expected standard status text, got %q", err.Error())
		}
	})

	t.Run("Is matches by type only", func(t *testing.T) {
		err := &StatusError{StatusCode: 401}
		wrapped := fmt.Errorf("call failed: %w", err)

		if !errors.Is(wrapped, &StatusError{}) {
			t.Error("expected errors.Is to find wrapped StatusError")
		}
		if err.Is(&ConnectionError{}) {
			t.Error("expected Is to return false for ConnectionError")
		}
	})
}

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ConnectionErrorType
	}{
		{"nil error", nil, ConnectionErrorUnknown},
		{"connection refused", errors.New("dial tcp 127.0.0.1:12345: connect: connection refused"), ConnectionErrorNetwork},
		{"connection reset", errors.New("read tcp: connection reset by peer"), ConnectionErrorNetwork},
		{"no route to host", errors.New("dial tcp: no route to host"), ConnectionErrorNetwork},
		{"x509 error", errors.New("x509: certificate signed by unknown authority"), ConnectionErrorTLS},
		{"tls handshake", errors.New("net/http: TLS handshake timeout"), ConnectionErrorTLS},
		{"deadline exceeded", context.DeadlineExceeded, ConnectionErrorTimeout},
		{"dns failure", &net.DNSError{Err: "no such host", Name: "serv.amazingmarvin.com"}, ConnectionErrorDNS},
		{"unclassified", errors.New("something odd happened"), ConnectionErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyConnectionError(tt.err, "http://localhost:12345/api")
			if tt.err == nil {
				if result != nil {
					t.Fatal("expected nil for nil error")
				}
				return
			}
			if result.Type != tt.expected {
				t.Errorf("expected type %v, got %v", tt.expected, result.Type)
			}
			if result.Endpoint != "http://localhost:12345/api" {
				t.Errorf("expected endpoint to be preserved, got %q", result.Endpoint)
			}
			if !errors.Is(result, tt.err) {
				t.Error("expected classified error to wrap the original")
			}
		})
	}
}

func TestClassifyConnectionError_URLErrorTimeout(t *testing.T) {
	urlErr := &url.Error{
		Op:  "Get",
		URL: "http://localhost:12345/api/todayItems",
		Err: &timeoutError{},
	}

	result := ClassifyConnectionError(urlErr, "http://localhost:12345/api")
	if result.Type != ConnectionErrorTimeout {
		t.Errorf("expected timeout classification, got %v", result.Type)
	}
}

// timeoutError implements net.Error with Timeout() == true.
type timeoutError struct{}

func (*timeoutError) Error() string   { return "i/o timeout" }
func (*timeoutError) Timeout() bool   { return true }
func (*timeoutError) Temporary() bool { return false }
