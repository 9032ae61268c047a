// dao/catalog_client.go
package dao

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

	"go.uber.org/zap"

	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/metrics"
)

type tokenKey struct{}

// WithToken attaches the caller's bearer token to ctx for catalog requests
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// CatalogError is a non-2xx answer from the catalog API
type CatalogError struct {
	StatusCode int
	Message    string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog returned %d: %s", e.StatusCode, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return metacat_errors.ErrCatalogResponse
}

// CatalogClient sends JSON requests to the catalog REST API
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewCatalogClient(baseURL string, timeout time.Duration, m *metrics.Metrics) *CatalogClient {
	return &CatalogClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

type request struct {
	method      string
	endpoint    string // metrics label
	path        string
	query       url.Values
	body        interface{}
	contentType string
}

func (c *CatalogClient) do(ctx context.Context, req request, out interface{}) error {
	start := time.Now()
	err := c.send(ctx, req, out)
	duration := time.Since(start)
	c.metrics.CatalogRequest(req.endpoint, duration, err)

	if err != nil {
		logger.Error("Catalog request failed",
			zap.Error(err),
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.Duration("duration", duration))
		return err
	}

	logger.Debug("Catalog request completed",
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.Duration("duration", duration))
	return nil
}

func (c *CatalogClient) send(ctx context.Context, req request, out interface{}) error {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return fmt.Errorf("%w: %v", metacat_errors.ErrCatalogRequest, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		contentType := req.contentType
		if contentType == "" {
			contentType = "application/json"
		}
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token := tokenFrom(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", metacat_errors.ErrCatalogRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &CatalogError{StatusCode: resp.StatusCode, Message: readMessage(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", metacat_errors.ErrCatalogResponse, err)
	}
	return nil
}

// readMessage pulls "message" out of a catalog error body, falling back to the raw text
func readMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(data))
}

func isNotFound(err error) bool {
	var catalogErr *CatalogError
	if errors.As(err, &catalogErr) {
		return catalogErr.StatusCode == http.StatusNotFound
	}
	return false
}

// UserMessage is the text shown in a notification for this failure
func (e *CatalogError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}
