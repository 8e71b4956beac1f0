package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/stackmint/gobox/internal/types"
)

// CreateCollaboration invites a user or group onto a file or folder.
// The notify flag travels as a query parameter per the endpoint contract.
func CreateCollaboration(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateCollaborationRequest) (*types.Collaboration, error) {
	if err := types.ValidateIDPresent(req.Item.ID, "item.id"); err != nil {
		return nil, err
	}
	q := url.Values{}
	if req.Notify != nil {
		q.Set("notify", strconv.FormatBool(*req.Notify))
	}
	var collab types.Collaboration
	err := do(ctx, httpClient, baseURL, request{
		op:         "create collaboration",
		method:     http.MethodPost,
		path:       []string{"collaborations"},
		query:      q,
		body:       req,
		wantStatus: http.StatusCreated,
	}, &collab)
	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// GetCollaboration retrieves a collaboration by ID. fields, when non-empty,
// narrows the response to the named attributes.
func GetCollaboration(ctx context.Context, httpClient *http.Client, baseURL, collabID string, fields []string) (*types.Collaboration, error) {
	if err := types.ValidateIDPresent(collabID, "collaborationId"); err != nil {
		return nil, err
	}
	q := url.Values{}
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}
	var collab types.Collaboration
	err := do(ctx, httpClient, baseURL, request{
		op:         "get collaboration",
		method:     http.MethodGet,
		path:       []string{"collaborations", collabID},
		query:      q,
		wantStatus: http.StatusOK,
	}, &collab)
	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// PendingCollaborations lists collaborations awaiting a response from the
// current user.
func PendingCollaborations(ctx context.Context, httpClient *http.Client, baseURL string) (*types.Collaborations, error) {
	q := url.Values{"status": []string{string(types.StatusPending)}}
	var list types.Collaborations
	err := do(ctx, httpClient, baseURL, request{
		op:         "pending collaborations",
		method:     http.MethodGet,
		path:       []string{"collaborations"},
		query:      q,
		wantStatus: http.StatusOK,
	}, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateCollaboration changes a collaboration's role and/or status.
func UpdateCollaboration(ctx context.Context, httpClient *http.Client, baseURL, collabID string, req types.UpdateCollaborationRequest) (*types.Collaboration, error) {
	if err := types.ValidateIDPresent(collabID, "collaborationId"); err != nil {
		return nil, err
	}
	var collab types.Collaboration
	err := do(ctx, httpClient, baseURL, request{
		op:         "update collaboration",
		method:     http.MethodPut,
		path:       []string{"collaborations", collabID},
		body:       req,
		wantStatus: http.StatusOK,
	}, &collab)
	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// DeleteCollaboration removes a collaboration. Backend returns 204 No Content
// on success.
func DeleteCollaboration(ctx context.Context, httpClient *http.Client, baseURL, collabID string) error {
	if err := types.ValidateIDPresent(collabID, "collaborationId"); err != nil {
		return err
	}
	return do(ctx, httpClient, baseURL, request{
		op:         "delete collaboration",
		method:     http.MethodDelete,
		path:       []string{"collaborations", collabID},
		wantStatus: http.StatusNoContent,
	}, nil)
}
