// Package auth provides cookie-session authentication for the admin
// settings surface. There is a single admin identity configured at startup;
// tag-emission endpoints are public and never consult the session.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	isAuthKey = "is_authenticated"
	emailKey  = "admin_email"
)

// Admin is what we cache in the session and inject into r.Context().
type Admin struct {
	Email string
}

type ctxKey string

const currentAdminKey ctxKey = "currentAdmin"

// Manager owns the session cookie store and middleware.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a session manager. An empty key is allowed only for
// dev/test use: a random key is generated, so sessions do not survive a
// restart.
func NewManager(key, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if name == "" {
		return nil, fmt.Errorf("session name must not be empty")
	}

	keyBytes := []byte(key)
	if key == "" {
		keyBytes = securecookie.GenerateRandomKey(32)
		if keyBytes == nil {
			return nil, fmt.Errorf("failed to generate session key")
		}
		logger.Warn("no session key configured; generated a volatile key")
	}

	store := sessions.NewCookieStore(keyBytes)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, name: name, log: logger}, nil
}

// SignIn marks the session as authenticated for the given admin email.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, email string) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values[isAuthKey] = true
	sess.Values[emailKey] = email
	return sess.Save(r, w)
}

// SignOut clears the session.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Options.MaxAge = -1
	sess.Values = map[any]any{}
	return sess.Save(r, w)
}

// LoadSession injects the admin into context if the session is authenticated.
func (m *Manager) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := m.store.Get(r, m.name)
		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			email, _ := sess.Values[emailKey].(string)
			r = withAdmin(r, &Admin{Email: email})
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin ensures there is an admin in context (set by LoadSession).
// API callers get a plain 401; there is no HTML login page to redirect to.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentAdmin(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentAdmin returns the admin and "found?" flag.
func CurrentAdmin(r *http.Request) (*Admin, bool) {
	a, ok := r.Context().Value(currentAdminKey).(*Admin)
	return a, ok
}

// WithTestAdmin injects an admin into the request context for tests,
// bypassing the session middleware.
func WithTestAdmin(r *http.Request, email string) *http.Request {
	return withAdmin(r, &Admin{Email: email})
}

func withAdmin(r *http.Request, a *Admin) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentAdminKey, a))
}
