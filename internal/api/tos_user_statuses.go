package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stackmint/gobox/internal/apierr"
	"github.com/stackmint/gobox/internal/types"
)

// CreateTOSUserStatus records a user's acceptance decision for a
// terms-of-service. The service rejects a second create for the same pair
// with a conflict.
func CreateTOSUserStatus(ctx context.Context, httpClient *http.Client, baseURL, tosID, userID string, accepted bool) (*types.TermsOfServiceUserStatus, error) {
	if err := types.ValidateIDPresent(tosID, "tosId"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(userID, "userId"); err != nil {
		return nil, err
	}
	req := types.CreateTOSUserStatusRequest{
		TOS:        types.TOSReference{Type: "terms_of_service", ID: tosID},
		User:       types.Accessor{Type: "user", ID: userID},
		IsAccepted: accepted,
	}
	var status types.TermsOfServiceUserStatus
	err := do(ctx, httpClient, baseURL, request{
		op:         "create tos user status",
		method:     http.MethodPost,
		path:       []string{"terms_of_service_user_statuses"},
		body:       req,
		wantStatus: http.StatusCreated,
	}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetTOSUserStatuses retrieves the acceptance records for a terms-of-service,
// optionally narrowed to one user.
func GetTOSUserStatuses(ctx context.Context, httpClient *http.Client, baseURL, tosID, userID string) (*types.TOSUserStatuses, error) {
	if err := types.ValidateIDPresent(tosID, "tosId"); err != nil {
		return nil, err
	}
	q := url.Values{"tos_id": []string{tosID}}
	if userID != "" {
		q.Set("user_id", userID)
	}
	var list types.TOSUserStatuses
	err := do(ctx, httpClient, baseURL, request{
		op:         "get tos user statuses",
		method:     http.MethodGet,
		path:       []string{"terms_of_service_user_statuses"},
		query:      q,
		wantStatus: http.StatusOK,
	}, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateTOSUserStatus flips an existing acceptance record.
func UpdateTOSUserStatus(ctx context.Context, httpClient *http.Client, baseURL, statusID string, accepted bool) (*types.TermsOfServiceUserStatus, error) {
	if err := types.ValidateIDPresent(statusID, "statusId"); err != nil {
		return nil, err
	}
	var status types.TermsOfServiceUserStatus
	err := do(ctx, httpClient, baseURL, request{
		op:         "update tos user status",
		method:     http.MethodPut,
		path:       []string{"terms_of_service_user_statuses", statusID},
		body:       types.UpdateTOSUserStatusRequest{IsAccepted: accepted},
		wantStatus: http.StatusOK,
	}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// SetTOSUserStatus creates the acceptance record, and when one already exists
// (conflict) fetches it and updates it in place. At most one extra
// fetch-and-update pair runs on the conflict path.
func SetTOSUserStatus(ctx context.Context, httpClient *http.Client, baseURL, tosID, userID string, accepted bool) (*types.TermsOfServiceUserStatus, error) {
	status, err := CreateTOSUserStatus(ctx, httpClient, baseURL, tosID, userID, accepted)
	if err == nil {
		return status, nil
	}
	if apierr.StatusOf(err) != http.StatusConflict {
		return nil, err
	}

	existing, err := GetTOSUserStatuses(ctx, httpClient, baseURL, tosID, userID)
	if err != nil {
		return nil, err
	}
	if len(existing.Entries) == 0 {
		return nil, apierr.FromResponse("set tos user status", http.StatusNotFound, nil)
	}
	return UpdateTOSUserStatus(ctx, httpClient, baseURL, existing.Entries[0].ID, accepted)
}
