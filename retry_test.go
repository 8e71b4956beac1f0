package gobox

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestRetry_RecoversFromServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(TermsOfService{ID: "2778"})
	}))
	defer srv.Close()

	c, err := New(srv.URL, "tok", WithMaxRetries(3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.GetTermsOfService(context.Background(), "2778")
	if err != nil || got.ID != "2778" {
		t.Fatalf("expected success after retries: got=%+v err=%v", got, err)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Fatalf("expected 3 attempts, saw %d", n)
	}
}

func TestRetry_ReplaysRequestBody(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) == 0 {
			t.Error("request body missing on retry")
		}
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(AllowlistEntry{ID: "558459", Domain: "example.com", Direction: DirectionBoth})
	}))
	defer srv.Close()

	c, err := New(srv.URL, "tok", WithMaxRetries(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.CreateAllowlistEntry(context.Background(), "example.com", DirectionBoth)
	if err != nil || got.ID != "558459" {
		t.Fatalf("expected success after body replay: got=%+v err=%v", got, err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("expected 2 attempts, saw %d", n)
	}
}

func TestRetry_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "tok", WithMaxRetries(5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.GetTermsOfService(context.Background(), "missing"); !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("404 must not be retried, saw %d attempts", n)
	}
}

func TestRetry_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "tok", WithMaxRetries(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.GetTermsOfService(context.Background(), "1"); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Fatalf("expected initial attempt + 2 retries, saw %d", n)
	}
}

func TestRetry_DisabledByDefault(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "tok")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.GetTermsOfService(context.Background(), "1"); err == nil {
		t.Fatal("expected error")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("retry must be off by default, saw %d attempts", n)
	}
}
