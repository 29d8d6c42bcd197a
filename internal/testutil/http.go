package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dalemusser/storyads/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// NewRequest creates an HTTP request for testing. body may be nil.
func NewRequest(method, target string, body io.Reader) *http.Request {
	return httptest.NewRequest(method, target, body)
}

// NewAdminRequest creates an HTTP request with an admin in context,
// bypassing the session middleware. body may be nil.
func NewAdminRequest(method, target, email string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return auth.WithTestAdmin(req, email)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}

// AssertNotContains checks that the response body does not contain the string.
func (r *ResponseRecorder) AssertNotContains(t interface{ Errorf(string, ...any) }, unexpected string) {
	if strings.Contains(r.Body.String(), unexpected) {
		t.Errorf("response body unexpectedly contains %q", unexpected)
	}
}
