package whttp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestFetchReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		_, _ = w.Write([]byte("0430 ;\t0061 ;\tMA\t# CYRILLIC SMALL LETTER A\n"))
	}))
	defer srv.Close()

	body, err := Fetch(context.Background(), srv.URL, "")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(body) == 0 || body[0] != '0' {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestFetchNon200IsErrorWithoutRetry(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL, "")
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected a single request, got %d", got)
	}
}

func TestFetchInvalidProxy(t *testing.T) {
	if _, err := Fetch(context.Background(), "http://127.0.0.1", "://bad"); err == nil {
		t.Fatalf("expected an error for an invalid proxy URL")
	}
}
