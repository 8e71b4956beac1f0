// Package gobox is a thin Go client for a cloud content-management REST API,
// covering collaborations, collaboration domain allowlists, and terms of
// service. Every method issues exactly one JSON-over-HTTPS request through a
// shared http.Client and returns the decoded payload or a typed error.
package gobox

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/stackmint/gobox/internal/api"
)

// DefaultBaseURL is the production API endpoint, versioned path included.
const DefaultBaseURL = "https://api.box.com/2.0"

// Version is reported in the User-Agent header.
const Version = "0.3.0"

var (
	// ErrEmptyBaseURL is returned by New when no base URL is given.
	ErrEmptyBaseURL = errors.New("base URL is required")
	// ErrEmptyToken is returned by New when no access token is given.
	ErrEmptyToken = errors.New("access token is required")
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is safe for concurrent use; it is immutable after New returns.
type Client struct {
	baseURL    string
	http       *http.Client
	token      string
	userAgent  string
	asUser     string
	maxRetries int
}

// New constructs a Client for the given API base URL and bearer token.
// Additional knobs can be provided via functional options.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}
	if token == "" {
		return nil, ErrEmptyToken
	}

	c := &Client{
		baseURL:   baseURL,
		token:     token,
		userAgent: "gobox/" + Version,
		http:      &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Transport chain, innermost first: debug dump (optional, installed by
	// its option), retry, metrics, authorization.
	if c.maxRetries > 0 {
		c.http.Transport = &retryTransport{base: transportOrDefault(c.http.Transport), maxRetries: c.maxRetries}
	}
	c.http.Transport = &metricsTransport{base: transportOrDefault(c.http.Transport)}
	c.wrapTransportWithToken()

	return c, nil
}

func transportOrDefault(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		return http.DefaultTransport
	}
	return rt
}

// wrapTransportWithToken wraps the HTTP client's transport so every request
// carries the Authorization header plus User-Agent, a correlation id, and the
// optional As-User impersonation header.
func (c *Client) wrapTransportWithToken() {
	c.http.Transport = &authTransport{
		base:      transportOrDefault(c.http.Transport),
		token:     c.token,
		userAgent: c.userAgent,
		asUser:    c.asUser,
	}
}

// authTransport wraps an http.RoundTripper to add per-request headers.
type authTransport struct {
	base      http.RoundTripper
	token     string
	userAgent string
	asUser    string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone so retries and the caller's request stay untouched.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	cloned.Header.Set("User-Agent", t.userAgent)
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	if t.asUser != "" {
		cloned.Header.Set("As-User", t.asUser)
	}
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Collaboration operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateCollaboration invites a user or group onto a file or folder.
func (c *Client) CreateCollaboration(ctx context.Context, req CreateCollaborationRequest) (*Collaboration, error) {
	return api.CreateCollaboration(ctx, c.http, c.baseURL, req)
}

// GetCollaboration retrieves a collaboration, optionally narrowed to fields.
func (c *Client) GetCollaboration(ctx context.Context, collabID string, fields ...string) (*Collaboration, error) {
	return api.GetCollaboration(ctx, c.http, c.baseURL, collabID, fields)
}

// GetPendingCollaborations lists collaborations awaiting the current user's
// response.
func (c *Client) GetPendingCollaborations(ctx context.Context) (*Collaborations, error) {
	return api.PendingCollaborations(ctx, c.http, c.baseURL)
}

// UpdateCollaboration changes a collaboration's role and/or status.
func (c *Client) UpdateCollaboration(ctx context.Context, collabID string, req UpdateCollaborationRequest) (*Collaboration, error) {
	return api.UpdateCollaboration(ctx, c.http, c.baseURL, collabID, req)
}

// RespondToPendingCollaboration accepts or rejects a pending collaboration.
func (c *Client) RespondToPendingCollaboration(ctx context.Context, collabID string, accept bool) (*Collaboration, error) {
	status := StatusRejected
	if accept {
		status = StatusAccepted
	}
	return api.UpdateCollaboration(ctx, c.http, c.baseURL, collabID, UpdateCollaborationRequest{Status: status})
}

// DeleteCollaboration removes a collaboration.
func (c *Client) DeleteCollaboration(ctx context.Context, collabID string) error {
	return api.DeleteCollaboration(ctx, c.http, c.baseURL, collabID)
}

// --------------------------------------------------------------------
// Allowlist operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateAllowlistEntry adds a domain to the collaboration allowlist.
func (c *Client) CreateAllowlistEntry(ctx context.Context, domain string, direction AllowlistDirection) (*AllowlistEntry, error) {
	return api.CreateAllowlistEntry(ctx, c.http, c.baseURL, CreateAllowlistEntryRequest{Domain: domain, Direction: direction})
}

// GetAllowlistEntry retrieves an allowlist entry by ID.
func (c *Client) GetAllowlistEntry(ctx context.Context, entryID string) (*AllowlistEntry, error) {
	return api.GetAllowlistEntry(ctx, c.http, c.baseURL, entryID)
}

// ListAllowlistEntries pages through allowlist entries; continue with
// ListOptions.Marker set to the previous response's NextMarker.
func (c *Client) ListAllowlistEntries(ctx context.Context, opts ListOptions) (*AllowlistEntries, error) {
	return api.ListAllowlistEntries(ctx, c.http, c.baseURL, opts)
}

// DeleteAllowlistEntry removes a domain from the allowlist.
func (c *Client) DeleteAllowlistEntry(ctx context.Context, entryID string) error {
	return api.DeleteAllowlistEntry(ctx, c.http, c.baseURL, entryID)
}

// CreateExemptTarget exempts a user from the collaboration allowlist.
func (c *Client) CreateExemptTarget(ctx context.Context, userID string) (*ExemptTarget, error) {
	return api.CreateExemptTarget(ctx, c.http, c.baseURL, userID)
}

// GetExemptTarget retrieves an allowlist exemption by ID.
func (c *Client) GetExemptTarget(ctx context.Context, targetID string) (*ExemptTarget, error) {
	return api.GetExemptTarget(ctx, c.http, c.baseURL, targetID)
}

// ListExemptTargets pages through users exempted from the allowlist.
func (c *Client) ListExemptTargets(ctx context.Context, opts ListOptions) (*ExemptTargets, error) {
	return api.ListExemptTargets(ctx, c.http, c.baseURL, opts)
}

// DeleteExemptTarget removes an allowlist exemption.
func (c *Client) DeleteExemptTarget(ctx context.Context, targetID string) error {
	return api.DeleteExemptTarget(ctx, c.http, c.baseURL, targetID)
}

// --------------------------------------------------------------------
// Terms-of-service operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateTermsOfService creates a terms-of-service record. The service allows
// one record per tos_type; a second create returns a conflict.
func (c *Client) CreateTermsOfService(ctx context.Context, req CreateTermsOfServiceRequest) (*TermsOfService, error) {
	return api.CreateTermsOfService(ctx, c.http, c.baseURL, req)
}

// GetTermsOfService retrieves a terms-of-service record by ID.
func (c *Client) GetTermsOfService(ctx context.Context, tosID string) (*TermsOfService, error) {
	return api.GetTermsOfService(ctx, c.http, c.baseURL, tosID)
}

// ListTermsOfServices returns the enterprise's records, optionally filtered
// by type ("" lists all).
func (c *Client) ListTermsOfServices(ctx context.Context, tosType TermsOfServiceType) (*TermsOfServices, error) {
	return api.ListTermsOfServices(ctx, c.http, c.baseURL, tosType)
}

// UpdateTermsOfService changes a record's status and/or text.
func (c *Client) UpdateTermsOfService(ctx context.Context, tosID string, req UpdateTermsOfServiceRequest) (*TermsOfService, error) {
	return api.UpdateTermsOfService(ctx, c.http, c.baseURL, tosID, req)
}

// CreateTermsOfServiceUserStatus records a user's acceptance decision.
func (c *Client) CreateTermsOfServiceUserStatus(ctx context.Context, tosID, userID string, accepted bool) (*TermsOfServiceUserStatus, error) {
	return api.CreateTOSUserStatus(ctx, c.http, c.baseURL, tosID, userID, accepted)
}

// GetTermsOfServiceUserStatuses retrieves acceptance records for a
// terms-of-service, optionally narrowed to one user ("" lists all).
func (c *Client) GetTermsOfServiceUserStatuses(ctx context.Context, tosID, userID string) (*TOSUserStatuses, error) {
	return api.GetTOSUserStatuses(ctx, c.http, c.baseURL, tosID, userID)
}

// UpdateTermsOfServiceUserStatus flips an existing acceptance record.
func (c *Client) UpdateTermsOfServiceUserStatus(ctx context.Context, statusID string, accepted bool) (*TermsOfServiceUserStatus, error) {
	return api.UpdateTOSUserStatus(ctx, c.http, c.baseURL, statusID, accepted)
}

// SetTermsOfServiceUserStatus creates the acceptance record, or updates the
// existing one when the create conflicts.
func (c *Client) SetTermsOfServiceUserStatus(ctx context.Context, tosID, userID string, accepted bool) (*TermsOfServiceUserStatus, error) {
	return api.SetTOSUserStatus(ctx, c.http, c.baseURL, tosID, userID, accepted)
}
