package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultBaseURL      = "https://graph.microsoft.com/v1.0"
	defaultAuthorityURL = "https://login.microsoftonline.com"

	maxResponseSize = 10 << 20
)

// Config holds the settings of a directory client
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string

	// BaseURL is the API root. Sovereign clouds use their own host.
	BaseURL string
	// AuthorityURL is the token issuer root
	AuthorityURL string
	// SenderAddress is the mailbox guest notifications are sent from
	SenderAddress string

	// HTTPClient replaces the authenticated client, mainly for tests
	HTTPClient *http.Client
}

// Client is a directory service backed by the Microsoft Graph REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	sender     string
}

// New creates a client. Without an explicit HTTPClient the client
// authenticates with the client credentials grant.
func New(ctx context.Context, cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if cfg.SenderAddress == "" {
		return nil, goerr.New("sender address is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		if cfg.TenantID == "" || cfg.ClientID == "" || cfg.ClientSecret == "" {
			return nil, goerr.New("tenant ID, client ID and client secret are required")
		}

		authority := strings.TrimRight(cfg.AuthorityURL, "/")
		if authority == "" {
			authority = defaultAuthorityURL
		}
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     fmt.Sprintf("%s/%s/oauth2/v2.0/token", authority, cfg.TenantID),
			Scopes:       []string{scopeFor(baseURL)},
		}
		httpClient = cc.Client(ctx)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		sender:     cfg.SenderAddress,
	}, nil
}

// scopeFor returns the default scope of the API host in baseURL
func scopeFor(baseURL string) string {
	host := baseURL
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.Index(host, "/"); i >= 0 {
		host = host[:i]
	}
	return "https://" + host + "/.default"
}

// APIError is a non-2xx response of the API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph: HTTP %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error.Code != "" {
		apiErr.Code = resp.Error.Code
		apiErr.Message = resp.Error.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

// statusTags maps response status codes to the error tags the core
// understands. Operations may extend the mapping.
type statusTags map[int]goerr.Option

var defaultStatusTags = statusTags{
	http.StatusConflict:  goerr.T(model.ErrTagAlreadyExists),
	http.StatusForbidden: goerr.T(model.ErrTagAccessDenied),
	http.StatusNotFound:  goerr.T(model.ErrTagNotFound),
}

// recipientStatusTags is used by calls addressing external recipients,
// where a bad request means the tenant rejected the recipient
var recipientStatusTags = statusTags{
	http.StatusBadRequest: goerr.T(model.ErrTagBlockedRecipient),
	http.StatusConflict:   goerr.T(model.ErrTagAlreadyExists),
	http.StatusForbidden:  goerr.T(model.ErrTagAccessDenied),
	http.StatusNotFound:   goerr.T(model.ErrTagNotFound),
}

type request struct {
	method string
	path   string // Relative to the base URL, or an absolute next link
	body   any
	out    any
	tags   statusTags
}

func (c *Client) url(path string) string {
	if strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "http://") {
		return path
	}
	return c.baseURL + path
}

// bind returns an absolute resource reference for @odata.bind fields
func (c *Client) bind(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}

func (c *Client) do(ctx context.Context, req request) error {
	var reader io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body", goerr.V("path", req.path))
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.url(req.path), reader)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("path", req.path))
	}
	httpReq.Header.Set("Accept", "application/json")
	if reader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return goerr.Wrap(err, "failed to send request",
			goerr.V("method", req.method),
			goerr.V("path", req.path))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return goerr.Wrap(err, "failed to read response body", goerr.V("path", req.path))
	}

	ctxlog.From(ctx).Debug("Directory API call",
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseAPIError(resp.StatusCode, body)
		opts := []goerr.Option{
			goerr.V(model.StatusKey, resp.StatusCode),
			goerr.V("method", req.method),
			goerr.V("path", req.path),
			goerr.V("code", apiErr.Code),
		}
		tags := req.tags
		if tags == nil {
			tags = defaultStatusTags
		}
		if tag, ok := tags[resp.StatusCode]; ok {
			opts = append(opts, tag)
		}
		return goerr.Wrap(apiErr, "directory API request failed", opts...)
	}

	if req.out != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, req.out); err != nil {
			return goerr.Wrap(err, "failed to decode response body",
				goerr.V("path", req.path),
				goerr.V("body", string(body)))
		}
	}
	return nil
}

type page[T any] struct {
	Value    []T    `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

// list follows next links until every page has been read
func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var all []T
	for next := path; next != ""; {
		var p page[T]
		if err := c.do(ctx, request{method: http.MethodGet, path: next, out: &p}); err != nil {
			return nil, err
		}
		all = append(all, p.Value...)
		next = p.NextLink
	}
	return all, nil
}
