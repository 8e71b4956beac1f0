package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stackmint/gobox/internal/types"
)

func TestCreateExemptTarget_Contract(t *testing.T) {
	t.Parallel()
	want := types.ExemptTarget{Type: "collaboration_whitelist_exempt_target", ID: "9477"}
	srv, rec := recordingServer(t, http.StatusCreated, want)

	got, err := CreateExemptTarget(context.Background(), srv.Client(), srv.URL, "5678")
	if err != nil || got.ID != "9477" {
		t.Fatalf("CreateExemptTarget unexpected: got=%+v err=%v", got, err)
	}
	if rec.Method != http.MethodPost || rec.Path != "/collaboration_whitelist_exempt_targets" {
		t.Fatalf("wrong request: %s %s", rec.Method, rec.Path)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body, &body)
	user := body["user"].(map[string]any)
	if user["type"] != "user" || user["id"] != "5678" {
		t.Fatalf("body user = %v", user)
	}
}

func TestCreateExemptTarget_EmptyUser(t *testing.T) {
	t.Parallel()
	if _, err := CreateExemptTarget(context.Background(), http.DefaultClient, "http://x", ""); err == nil {
		t.Fatal("expected validation error for empty user id")
	}
}

func TestGetExemptTarget(t *testing.T) {
	t.Parallel()
	srv, rec := recordingServer(t, http.StatusOK, types.ExemptTarget{ID: "9477"})
	got, err := GetExemptTarget(context.Background(), srv.Client(), srv.URL, "9477")
	if err != nil || got.ID != "9477" {
		t.Fatalf("GetExemptTarget unexpected: got=%+v err=%v", got, err)
	}
	if rec.Path != "/collaboration_whitelist_exempt_targets/9477" {
		t.Fatalf("wrong path: %s", rec.Path)
	}
}

func TestListExemptTargets(t *testing.T) {
	t.Parallel()
	srv, rec := recordingServer(t, http.StatusOK, types.ExemptTargets{Entries: []types.ExemptTarget{{ID: "9477"}}, NextMarker: "n"})
	got, err := ListExemptTargets(context.Background(), srv.Client(), srv.URL, types.ListOptions{Limit: 10})
	if err != nil || len(got.Entries) != 1 || got.NextMarker != "n" {
		t.Fatalf("ListExemptTargets unexpected: got=%+v err=%v", got, err)
	}
	if rec.Path != "/collaboration_whitelist_exempt_targets" || rec.Query != "limit=10" {
		t.Fatalf("wrong request: %s?%s", rec.Path, rec.Query)
	}
}

func TestDeleteExemptTarget(t *testing.T) {
	t.Parallel()
	srv, rec := recordingServer(t, http.StatusNoContent, nil)
	if err := DeleteExemptTarget(context.Background(), srv.Client(), srv.URL, "9477"); err != nil {
		t.Fatalf("DeleteExemptTarget error: %v", err)
	}
	if rec.Method != http.MethodDelete || rec.Path != "/collaboration_whitelist_exempt_targets/9477" {
		t.Fatalf("wrong request: %s %s", rec.Method, rec.Path)
	}
}

func TestExemptTargets_NonOKStatuses(t *testing.T) {
	t.Parallel()
	srv, _ := recordingServer(t, http.StatusBadRequest, nil)
	if _, err := CreateExemptTarget(context.Background(), srv.Client(), srv.URL, "5678"); err == nil {
		t.Fatal("expected error for CreateExemptTarget non-201")
	}
	if _, err := GetExemptTarget(context.Background(), srv.Client(), srv.URL, "1"); err == nil {
		t.Fatal("expected error for GetExemptTarget non-200")
	}
}
