package api

import (
	"context"
	"net/http"

	"github.com/stackmint/gobox/internal/types"
)

// CreateExemptTarget exempts a user from the collaboration allowlist.
func CreateExemptTarget(ctx context.Context, httpClient *http.Client, baseURL, userID string) (*types.ExemptTarget, error) {
	if err := types.ValidateIDPresent(userID, "userId"); err != nil {
		return nil, err
	}
	req := types.CreateExemptTargetRequest{User: types.Accessor{Type: "user", ID: userID}}
	var target types.ExemptTarget
	err := do(ctx, httpClient, baseURL, request{
		op:         "create exempt target",
		method:     http.MethodPost,
		path:       []string{"collaboration_whitelist_exempt_targets"},
		body:       req,
		wantStatus: http.StatusCreated,
	}, &target)
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// GetExemptTarget retrieves a single exemption by ID.
func GetExemptTarget(ctx context.Context, httpClient *http.Client, baseURL, targetID string) (*types.ExemptTarget, error) {
	if err := types.ValidateIDPresent(targetID, "targetId"); err != nil {
		return nil, err
	}
	var target types.ExemptTarget
	err := do(ctx, httpClient, baseURL, request{
		op:         "get exempt target",
		method:     http.MethodGet,
		path:       []string{"collaboration_whitelist_exempt_targets", targetID},
		wantStatus: http.StatusOK,
	}, &target)
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// ListExemptTargets pages through users exempted from the allowlist.
func ListExemptTargets(ctx context.Context, httpClient *http.Client, baseURL string, opts types.ListOptions) (*types.ExemptTargets, error) {
	var list types.ExemptTargets
	err := do(ctx, httpClient, baseURL, request{
		op:         "list exempt targets",
		method:     http.MethodGet,
		path:       []string{"collaboration_whitelist_exempt_targets"},
		query:      markerQuery(opts),
		wantStatus: http.StatusOK,
	}, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteExemptTarget removes an exemption. Backend returns 204 No Content on
// success.
func DeleteExemptTarget(ctx context.Context, httpClient *http.Client, baseURL, targetID string) error {
	if err := types.ValidateIDPresent(targetID, "targetId"); err != nil {
		return err
	}
	return do(ctx, httpClient, baseURL, request{
		op:         "delete exempt target",
		method:     http.MethodDelete,
		path:       []string{"collaboration_whitelist_exempt_targets", targetID},
		wantStatus: http.StatusNoContent,
	}, nil)
}
