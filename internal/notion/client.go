package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/notiplan/notiplan/internal/constants"
	apperrors "github.com/notiplan/notiplan/internal/errors"
	"github.com/notiplan/notiplan/internal/logger"
)

// Credential is a bearer token plus the workspace scope it targets.
type Credential struct {
	Token       string
	WorkspaceID string
}

// CredentialProvider supplies and revokes the remote credential. Both
// operations may suspend (keyring access, token refresh); a nil credential
// with a nil error means "not authenticated".
type CredentialProvider interface {
	Credential(ctx context.Context) (*Credential, error)
	Invalidate(ctx context.Context) error
}

// Client is the JSON-over-HTTPS transport to the remote document API. It
// owns header construction and error mapping; it never retries, so failure
// semantics stay predictable for callers that want their own retry policy.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      CredentialProvider
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient creates a transport bound to a credential provider.
func NewClient(creds CredentialProvider, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    constants.NotionBaseURL,
		creds:      creds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	cred, err := c.creds.Credential(ctx)
	if err != nil {
		return &apperrors.AuthError{Reason: "credential lookup failed", Err: err}
	}
	if cred == nil || cred.Token == "" {
		return &apperrors.AuthError{Reason: "not authenticated"}
	}

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+cred.Token)
	req.Header.Set("Notion-Version", constants.NotionVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	logger.Debug("remote call", "request_id", requestID, "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remote request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if ierr := c.creds.Invalidate(ctx); ierr != nil {
			logger.Warn("credential invalidation failed", "request_id", requestID, "error", ierr)
		}
		return &apperrors.AuthError{Reason: fmt.Sprintf("remote rejected credential (status %d)", resp.StatusCode)}
	case resp.StatusCode >= 300:
		var ae apiError
		_ = json.NewDecoder(resp.Body).Decode(&ae)
		logger.Warn("remote call failed", "request_id", requestID, "status", resp.StatusCode, "message", ae.Message)
		return &apperrors.RemoteError{StatusCode: resp.StatusCode, Message: ae.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// notFound translates a 404 from a direct id lookup into a NotFoundError.
func notFound(err error, resource, id string) error {
	var re *apperrors.RemoteError
	if errors.As(err, &re) && re.StatusCode == http.StatusNotFound {
		return &apperrors.NotFoundError{Resource: resource, ID: id}
	}
	return err
}

// QueryDatabase runs a filter/sort query against one database.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, q QueryRequest) (QueryResponse, error) {
	var out QueryResponse
	err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", q, &out)
	return out, err
}

// CreatePage creates one record.
func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (Page, error) {
	var out Page
	err := c.do(ctx, http.MethodPost, "/pages", req, &out)
	return out, err
}

// GetPage fetches one record by id. Archived records remain fetchable here
// even though queries exclude them.
func (c *Client) GetPage(ctx context.Context, pageID string) (Page, error) {
	var out Page
	err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &out)
	return out, notFound(err, "page", pageID)
}

// UpdatePage transmits a partial property update or toggles the archived flag.
func (c *Client) UpdatePage(ctx context.Context, pageID string, req UpdatePageRequest) (Page, error) {
	var out Page
	err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, req, &out)
	return out, notFound(err, "page", pageID)
}

// Search looks up databases in the workspace by title.
func (c *Client) Search(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	var out SearchResponse
	err := c.do(ctx, http.MethodPost, "/search", req, &out)
	return out, err
}

// CreateDatabase provisions a new schema-defined database.
func (c *Client) CreateDatabase(ctx context.Context, req CreateDatabaseRequest) (Database, error) {
	var out Database
	err := c.do(ctx, http.MethodPost, "/databases", req, &out)
	return out, err
}
