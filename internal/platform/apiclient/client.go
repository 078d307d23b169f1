// Package apiclient is the one HTTP door to the FitTrack API. It owns the
// JSON convention, bearer-token injection, and the global 401 reaction:
// any unauthorized response clears the stored credential before the
// per-call error ever reaches a caller.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	apperrors "fittrack/internal/platform/errors"
	"fittrack/internal/platform/id"
)

// TokenSource yields the stored bearer token, or "" when logged out.
type TokenSource interface {
	Token(ctx context.Context) string
}

// APIError is a non-2xx response with whatever message the server offered.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// ServerMessage extracts the server-provided message from an error chain,
// so callers can fall back to their own generic text when absent.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func(context.Context)
	log            zerolog.Logger
	ids            id.Generator
}

// New builds a Client. onUnauthorized runs on every 401 regardless of the
// calling operation; pass the credential-store clear there.
func New(baseURL string, tokens TokenSource, onUnauthorized func(context.Context), log zerolog.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &http.Client{},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
		log:            log,
		ids:            id.RandomHex{},
	}
}

// DoJSON performs a JSON request. body and out may be nil.
func (c *Client) DoJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// DoMultipart uploads content as a multipart form under the given field
// name. The server's JSON response is decoded into out when non-nil.
func (c *Client) DoMultipart(ctx context.Context, path, field, filename, contentType string, content io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename)}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("api: create form part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("api: write form part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("api: finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if token := c.tokens.Token(req.Context()); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqID := c.ids.New()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Str("request_id", reqID).Str("method", req.Method).Str("path", req.URL.Path).Err(err).Msg("request failed")
		return fmt.Errorf("api: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("path", req.URL.Path).Int("status", resp.StatusCode).Msg("request done")

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized(req.Context())
		}
		return fmt.Errorf("%w: %s %s", apperrors.ErrUnauthorized, req.Method, req.URL.Path)
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: decodeMessage(resp.Body)}
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", apperrors.ErrNotFound, apiErr.Error())
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// decodeMessage pulls the server's error text. The API answers with
// {"message": ...} everywhere except the image upload, which uses
// {"error": ...}.
func decodeMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
