package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stackmint/gobox/internal/types"
)

func TestCreateTermsOfService_Contract(t *testing.T) {
	t.Parallel()
	want := types.TermsOfService{Type: "terms_of_service", ID: "2778", Status: types.TOSEnabled, TOSType: types.TOSTypeManaged}
	srv, rec := recordingServer(t, http.StatusCreated, want)

	got, err := CreateTermsOfService(context.Background(), srv.Client(), srv.URL, types.CreateTermsOfServiceRequest{
		Status: types.TOSEnabled, TOSType: types.TOSTypeManaged, Text: "By using this service...",
	})
	if err != nil || got.ID != "2778" {
		t.Fatalf("CreateTermsOfService unexpected: got=%+v err=%v", got, err)
	}
	if rec.Method != http.MethodPost || rec.Path != "/terms_of_services" {
		t.Fatalf("wrong request: %s %s", rec.Method, rec.Path)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body, &body)
	if body["status"] != "enabled" || body["tos_type"] != "managed" || body["text"] != "By using this service..." {
		t.Fatalf("body = %v", body)
	}
}

func TestGetTermsOfService(t *testing.T) {
	t.Parallel()
	srv, rec := recordingServer(t, http.StatusOK, types.TermsOfService{ID: "2778"})
	got, err := GetTermsOfService(context.Background(), srv.Client(), srv.URL, "2778")
	if err != nil || got.ID != "2778" {
		t.Fatalf("GetTermsOfService unexpected: got=%+v err=%v", got, err)
	}
	if rec.Path != "/terms_of_services/2778" {
		t.Fatalf("wrong path: %s", rec.Path)
	}
}

func TestListTermsOfServices_TypeFilter(t *testing.T) {
	t.Parallel()
	srv, rec := recordingServer(t, http.StatusOK, types.TermsOfServices{TotalCount: 2, Entries: []types.TermsOfService{{ID: "1"}, {ID: "2"}}})
	got, err := ListTermsOfServices(context.Background(), srv.Client(), srv.URL, types.TOSTypeExternal)
	if err != nil || got.TotalCount != 2 {
		t.Fatalf("ListTermsOfServices unexpected: got=%+v err=%v", got, err)
	}
	if rec.Path != "/terms_of_services" || rec.Query != "tos_type=external" {
		t.Fatalf("wrong request: %s?%s", rec.Path, rec.Query)
	}
}

func TestListTermsOfServices_NoFilter(t *testing.T) {
	t.Parallel()
	srv, rec := recordingServer(t, http.StatusOK, types.TermsOfServices{})
	if _, err := ListTermsOfServices(context.Background(), srv.Client(), srv.URL, ""); err != nil {
		t.Fatalf("ListTermsOfServices error: %v", err)
	}
	if rec.Query != "" {
		t.Fatalf("expected empty query, got %q", rec.Query)
	}
}

func TestUpdateTermsOfService(t *testing.T) {
	t.Parallel()
	srv, rec := recordingServer(t, http.StatusOK, types.TermsOfService{ID: "2778", Status: types.TOSDisabled})
	got, err := UpdateTermsOfService(context.Background(), srv.Client(), srv.URL, "2778", types.UpdateTermsOfServiceRequest{Status: types.TOSDisabled})
	if err != nil || got.Status != types.TOSDisabled {
		t.Fatalf("UpdateTermsOfService unexpected: got=%+v err=%v", got, err)
	}
	if rec.Method != http.MethodPut || rec.Path != "/terms_of_services/2778" {
		t.Fatalf("wrong request: %s %s", rec.Method, rec.Path)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body, &body)
	if _, ok := body["text"]; ok {
		t.Fatal("empty text must be omitted from the body")
	}
}

func TestTermsOfService_NonOKStatuses(t *testing.T) {
	t.Parallel()
	srv, _ := recordingServer(t, http.StatusConflict, map[string]any{"code": "conflict"})
	if _, err := CreateTermsOfService(context.Background(), srv.Client(), srv.URL, types.CreateTermsOfServiceRequest{}); err == nil {
		t.Fatal("expected error for CreateTermsOfService non-201")
	}
	if _, err := UpdateTermsOfService(context.Background(), srv.Client(), srv.URL, "1", types.UpdateTermsOfServiceRequest{}); err == nil {
		t.Fatal("expected error for UpdateTermsOfService non-200")
	}
}
