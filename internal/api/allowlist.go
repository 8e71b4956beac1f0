package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/stackmint/gobox/internal/types"
)

// CreateAllowlistEntry adds a domain to the collaboration allowlist for the
// given direction.
func CreateAllowlistEntry(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateAllowlistEntryRequest) (*types.AllowlistEntry, error) {
	if err := types.ValidateIDPresent(req.Domain, "domain"); err != nil {
		return nil, err
	}
	if err := types.ValidateDirection(req.Direction); err != nil {
		return nil, err
	}
	var entry types.AllowlistEntry
	err := do(ctx, httpClient, baseURL, request{
		op:         "create allowlist entry",
		method:     http.MethodPost,
		path:       []string{"collaboration_whitelist_entries"},
		body:       req,
		wantStatus: http.StatusCreated,
	}, &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetAllowlistEntry retrieves a single allowlist entry by ID.
func GetAllowlistEntry(ctx context.Context, httpClient *http.Client, baseURL, entryID string) (*types.AllowlistEntry, error) {
	if err := types.ValidateIDPresent(entryID, "entryId"); err != nil {
		return nil, err
	}
	var entry types.AllowlistEntry
	err := do(ctx, httpClient, baseURL, request{
		op:         "get allowlist entry",
		method:     http.MethodGet,
		path:       []string{"collaboration_whitelist_entries", entryID},
		wantStatus: http.StatusOK,
	}, &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListAllowlistEntries pages through the enterprise's allowlist entries.
// Callers continue with opts.Marker set to the previous response's NextMarker.
func ListAllowlistEntries(ctx context.Context, httpClient *http.Client, baseURL string, opts types.ListOptions) (*types.AllowlistEntries, error) {
	var list types.AllowlistEntries
	err := do(ctx, httpClient, baseURL, request{
		op:         "list allowlist entries",
		method:     http.MethodGet,
		path:       []string{"collaboration_whitelist_entries"},
		query:      markerQuery(opts),
		wantStatus: http.StatusOK,
	}, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteAllowlistEntry removes a domain from the allowlist. Backend returns
// 204 No Content on success.
func DeleteAllowlistEntry(ctx context.Context, httpClient *http.Client, baseURL, entryID string) error {
	if err := types.ValidateIDPresent(entryID, "entryId"); err != nil {
		return err
	}
	return do(ctx, httpClient, baseURL, request{
		op:         "delete allowlist entry",
		method:     http.MethodDelete,
		path:       []string{"collaboration_whitelist_entries", entryID},
		wantStatus: http.StatusNoContent,
	}, nil)
}

// markerQuery encodes marker pagination options, omitting zero values.
func markerQuery(opts types.ListOptions) url.Values {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Marker != "" {
		q.Set("marker", opts.Marker)
	}
	return q
}
