package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stackmint/gobox/internal/types"
)

// CreateTermsOfService creates a terms-of-service record for the enterprise.
// The service allows at most one record per tos_type; a second create returns
// a conflict.
func CreateTermsOfService(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateTermsOfServiceRequest) (*types.TermsOfService, error) {
	var tos types.TermsOfService
	err := do(ctx, httpClient, baseURL, request{
		op:         "create terms of service",
		method:     http.MethodPost,
		path:       []string{"terms_of_services"},
		body:       req,
		wantStatus: http.StatusCreated,
	}, &tos)
	if err != nil {
		return nil, err
	}
	return &tos, nil
}

// GetTermsOfService retrieves a record by ID.
func GetTermsOfService(ctx context.Context, httpClient *http.Client, baseURL, tosID string) (*types.TermsOfService, error) {
	if err := types.ValidateIDPresent(tosID, "tosId"); err != nil {
		return nil, err
	}
	var tos types.TermsOfService
	err := do(ctx, httpClient, baseURL, request{
		op:         "get terms of service",
		method:     http.MethodGet,
		path:       []string{"terms_of_services", tosID},
		wantStatus: http.StatusOK,
	}, &tos)
	if err != nil {
		return nil, err
	}
	return &tos, nil
}

// ListTermsOfServices returns the enterprise's records, optionally filtered
// to one tos_type.
func ListTermsOfServices(ctx context.Context, httpClient *http.Client, baseURL string, tosType types.TermsOfServiceType) (*types.TermsOfServices, error) {
	q := url.Values{}
	if tosType != "" {
		q.Set("tos_type", string(tosType))
	}
	var list types.TermsOfServices
	err := do(ctx, httpClient, baseURL, request{
		op:         "list terms of services",
		method:     http.MethodGet,
		path:       []string{"terms_of_services"},
		query:      q,
		wantStatus: http.StatusOK,
	}, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateTermsOfService changes a record's status and/or text.
func UpdateTermsOfService(ctx context.Context, httpClient *http.Client, baseURL, tosID string, req types.UpdateTermsOfServiceRequest) (*types.TermsOfService, error) {
	if err := types.ValidateIDPresent(tosID, "tosId"); err != nil {
		return nil, err
	}
	var tos types.TermsOfService
	err := do(ctx, httpClient, baseURL, request{
		op:         "update terms of service",
		method:     http.MethodPut,
		path:       []string{"terms_of_services", tosID},
		body:       req,
		wantStatus: http.StatusOK,
	}, &tos)
	if err != nil {
		return nil, err
	}
	return &tos, nil
}
