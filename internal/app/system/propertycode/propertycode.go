// Package propertycode resolves the vendor property code used to look up
// ad configuration from the remote ad-config API.
//
// The code is derived from the inbound request: the first dot-separated
// label of the host wins when it is numeric, then the "id" query parameter,
// then the configured fallback. Resolution never fails; the fallback
// guarantees a non-empty result.
package propertycode

import (
	"net/http"
	"strings"
)

// FromRequest extracts the property code for the given request.
//
// Precedence:
//  1. first host label, if it is all digits (e.g. "1234.example.com" -> "1234")
//  2. query parameter "id", if it is all digits
//  3. fallback
func FromRequest(r *http.Request, fallback string) string {
	host := r.Host
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx] // Remove port
	}

	if label, _, ok := strings.Cut(host, "."); ok && numeric(label) {
		return label
	}

	if id := r.URL.Query().Get("id"); numeric(id) {
		return id
	}

	return fallback
}

// numeric reports whether s is non-empty and consists only of ASCII digits.
func numeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
