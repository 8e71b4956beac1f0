package gobox

import (
	"net/http"
	"testing"
	"time"
)

func TestWithHTTPTimeout(t *testing.T) {
	c, err := New("http://x", "tok", WithHTTPTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", c.http.Timeout)
	}
	if _, err := New("http://x", "tok", WithHTTPTimeout(0)); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestWithHTTPClient(t *testing.T) {
	h := &http.Client{Timeout: time.Second}
	c, err := New("http://x", "tok", WithHTTPClient(h))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != time.Second {
		t.Fatalf("custom client not installed")
	}
	if _, ok := c.http.Transport.(*authTransport); !ok {
		t.Fatalf("custom client transport not wrapped: %T", c.http.Transport)
	}
	if _, err := New("http://x", "tok", WithHTTPClient(nil)); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestWithMaxRetries(t *testing.T) {
	if _, err := New("http://x", "tok", WithMaxRetries(-1)); err == nil {
		t.Fatal("expected error for negative retries")
	}
	c, err := New("http://x", "tok", WithMaxRetries(3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.maxRetries != 3 {
		t.Fatalf("maxRetries = %d", c.maxRetries)
	}
}

func TestWithUserAgent_Empty(t *testing.T) {
	if _, err := New("http://x", "tok", WithUserAgent("")); err == nil {
		t.Fatal("expected error for empty user agent")
	}
}

func TestDebugLoggingRequestedFromEnv(t *testing.T) {
	t.Setenv("GOBOX_DEBUG", "true")
	if !debugLoggingRequested() {
		t.Fatal("GOBOX_DEBUG=true should enable debug logging")
	}
	t.Setenv("GOBOX_DEBUG", "1")
	t.Setenv("DEBUG", "")
	if debugLoggingRequested() {
		t.Fatal("only the exact value \"true\" enables debug logging")
	}
}
