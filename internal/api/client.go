// Package api provides HTTP clients for the DocuChat admin and agent services.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is a low-level JSON request/response client. AdminClient and
// AgentClient wrap it with typed operations.
type Client struct {
	baseURL    string
	prefix     string
	token      string
	httpClient *http.Client
}

func newClient(baseURL, prefix, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		prefix:  prefix,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasToken reports whether a bearer token is configured.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// Close releases the client's idle connections. The client must not be used
// after Close.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// withToken returns a copy of the client authenticating with token, sharing
// the underlying connection pool.
func (c *Client) withToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// errorDetail is the error body shape used by both services.
type errorDetail struct {
	Detail string `json:"detail"`
}

// do performs one request and classifies the outcome: 2xx decodes into out,
// 404 returns ErrNotFound, any other status returns *RemoteError, and a
// request that never reached the service returns *ConnectionError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart uploads a local file as a multipart form under the field "file".
func (c *Client) doMultipart(ctx context.Context, path, filePath string, out any) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + c.prefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return &ConnectionError{Addr: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	slog.Debug("request", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		detail := http.StatusText(resp.StatusCode)
		var ed errorDetail
		if json.Unmarshal(respBody, &ed) == nil && ed.Detail != "" {
			detail = ed.Detail
		}
		return &RemoteError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}
