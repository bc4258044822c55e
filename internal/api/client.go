package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marvin/pkg/logging"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every single attempt. A stopped desktop app fails
// with connection refused in microseconds; the timeout exists for the hang
// cases (filtered ports, stalled TLS, a wedged desktop app).
const DefaultTimeout = 10 * time.Second

// Client dispatches one request across an ordered list of candidate
// endpoints. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient returns a client with the default per-attempt timeout.
func NewClient(version string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  "marvin/" + version,
	}
}

// Request is one logical API call, already resolved: the candidates came
// from Candidates, the credential from CredentialFor, and body/path either
// from classification or from the command that owns the operation.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        []byte
	ContentType string
	Candidates  []string
	Credential  Credential
}

// Response is a successful (2xx) response, tagged with the base URL that
// served it.
type Response struct {
	StatusCode int
	Body       []byte
	Endpoint   string
}

// DecodeJSON unmarshals the response body.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", r.Endpoint, err)
	}
	return nil
}

// Do tries the request against each candidate in order and returns the first
// HTTP response the service produces.
//
// A transport failure (anything that prevents obtaining a complete HTTP
// response) on a non-final candidate silently advances to the next one; on
// the final candidate it surfaces as a *ConnectionError. Any HTTP response
// ends the iteration: 2xx becomes the *Response, everything else a
// *StatusError. There are no retries and no backoff; each candidate is tried
// exactly once.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if len(req.Candidates) == 0 {
		return nil, errors.New("no candidate endpoints")
	}

	requestID := uuid.NewString()

	var lastErr *ConnectionError
	for i, base := range req.Candidates {
		resp, err := c.attempt(ctx, base, requestID, req)
		if err == nil {
			logging.Debug("dispatch", "%s %s served by %s (status %d, request %s)",
				req.Method, req.Path, base, resp.StatusCode, requestID)
			return resp, nil
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			// The service answered; its verdict stands regardless of
			// remaining candidates.
			logging.Debug("dispatch", "%s %s answered by %s with status %d (request %s)",
				req.Method, req.Path, base, statusErr.StatusCode, requestID)
			return nil, err
		}

		lastErr = ClassifyConnectionError(err, base)
		if i < len(req.Candidates)-1 {
			logging.Debug("dispatch", "%s unreachable (%s), trying next candidate (request %s)",
				base, lastErr.Type, requestID)
			continue
		}
	}

	return nil, lastErr
}

// attempt performs a single HTTP exchange with one endpoint. It returns a
// *StatusError for non-2xx responses and the raw transport error otherwise,
// leaving classification to the caller.
func (c *Client) attempt(ctx context.Context, base, requestID string, req Request) (*Response, error) {
	target := strings.TrimSuffix(base, "/") + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader
	if len(req.Body) > 0 {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, err
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if req.Credential.Token != "" {
		httpReq.Header.Set(req.Credential.Header, req.Credential.Token)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(HeaderRequestID, requestID)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		// The connection died mid-body; no complete response was obtained.
		return nil, err
	}

	if httpResp.StatusCode >= 400 {
		return nil, &StatusError{
			StatusCode: httpResp.StatusCode,
			Endpoint:   base,
			Body:       string(data),
		}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       data,
		Endpoint:   base,
	}, nil
}
