// internal/app/features/adminauth/handler.go
package adminauth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/storyads/internal/app/system/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Handler serves admin login and logout for the settings API.
// There is a single admin identity, configured at startup with a bcrypt
// password hash; when either the email or the hash is unset, login is
// disabled entirely.
type Handler struct {
	Sessions          *auth.Manager
	AdminEmail        string
	AdminPasswordHash string
	Log               *zap.Logger
}

// NewHandler constructs an admin auth handler.
func NewHandler(sessions *auth.Manager, adminEmail, adminPasswordHash string, logger *zap.Logger) *Handler {
	return &Handler{
		Sessions:          sessions,
		AdminEmail:        adminEmail,
		AdminPasswordHash: adminPasswordHash,
		Log:               logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /admin/login.
//
// Credential failures are indistinguishable to the caller: a flat 401 for
// wrong email or wrong password.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.AdminEmail == "" || h.AdminPasswordHash == "" {
		http.Error(w, `{"error":"admin login is not configured"}`, http.StatusForbidden)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	if !strings.EqualFold(strings.TrimSpace(req.Email), h.AdminEmail) {
		http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.AdminPasswordHash), []byte(req.Password)); err != nil {
		h.Log.Info("admin login failed", zap.String("email", req.Email))
		http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
		return
	}

	if err := h.Sessions.SignIn(w, r, h.AdminEmail); err != nil {
		h.Log.Error("admin sign-in failed", zap.Error(err))
		http.Error(w, `{"error":"failed to create session"}`, http.StatusInternalServerError)
		return
	}

	h.Log.Info("admin signed in", zap.String("email", h.AdminEmail))
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HandleLogout handles POST /admin/logout.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(w, r); err != nil {
		h.Log.Error("admin sign-out failed", zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}
