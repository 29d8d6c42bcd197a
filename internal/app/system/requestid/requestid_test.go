package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/storyads/internal/app/system/requestid"
)

func TestMiddleware_GeneratesID(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestid.FromRequest(r)
	})

	req := httptest.NewRequest("GET", "/stories", nil)
	rec := httptest.NewRecorder()
	requestid.Middleware(next).ServeHTTP(rec, req)

	if got == "" {
		t.Fatal("expected a generated request ID in context")
	}
	if rec.Header().Get(requestid.Header) != got {
		t.Errorf("response header %q does not match context ID %q", rec.Header().Get(requestid.Header), got)
	}
}

func TestMiddleware_PropagatesExistingID(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestid.FromRequest(r)
	})

	req := httptest.NewRequest("GET", "/stories", nil)
	req.Header.Set(requestid.Header, "upstream-id")
	rec := httptest.NewRecorder()
	requestid.Middleware(next).ServeHTTP(rec, req)

	if got != "upstream-id" {
		t.Errorf("got %q, want %q", got, "upstream-id")
	}
}

func TestFromRequest_NoMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/stories", nil)
	if got := requestid.FromRequest(req); got != "" {
		t.Errorf("expected empty ID without middleware, got %q", got)
	}
}
