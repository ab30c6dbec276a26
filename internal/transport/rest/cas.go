package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/trainrec-backend/internal/auth"
	"github.com/heartmarshall/trainrec-backend/internal/config"
	"github.com/heartmarshall/trainrec-backend/internal/domain"
	authsvc "github.com/heartmarshall/trainrec-backend/internal/service/auth"
)

// casAuthService defines the auth operations behind the CAS endpoints.
type casAuthService interface {
	Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.LoginResult, error)
	CASLoginURL(service string) string
	CASLogoutURL(next string) string
}

// CASHandler serves /cas/login and /cas/logout.
type CASHandler struct {
	responder
	svc     casAuthService
	auth    config.AuthConfig
	cas     config.CASConfig
	base    *url.URL
	allowed []string
}

// NewCASHandler creates a CASHandler.
func NewCASHandler(svc casAuthService, authCfg config.AuthConfig, casCfg config.CASConfig, logger *slog.Logger, reporter errorReporter) *CASHandler {
	h := &CASHandler{
		responder: responder{log: logger.With("handler", "cas"), reporter: reporter},
		svc:       svc,
		auth:      authCfg,
		cas:       casCfg,
		allowed:   casCfg.AllowedHosts(),
	}
	if casCfg.ServiceBaseURL != "" {
		if u, err := url.Parse(casCfg.ServiceBaseURL); err == nil && u.IsAbs() {
			h.base = u
			h.allowed = append(h.allowed, strings.ToLower(u.Hostname()))
		}
	}
	return h
}

type loginRequest struct {
	Ticket  string `json:"ticket"`
	Service string `json:"service"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

// Login handles POST /cas/login.
func (h *CASHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	if id, ok := auth.IdentityFromCtx(ctx); ok && id.User(ctx) != nil {
		http.Redirect(w, r, h.safeNext(r.URL.Query().Get("next")), http.StatusFound)
		return
	}

	req := readLogin(w, r)
	if req.Ticket == "" || req.Service == "" {
		writeError(w, http.StatusForbidden, "ticket and service are required")
		return
	}

	result, err := h.svc.Login(ctx, authsvc.LoginInput{Ticket: req.Ticket, Service: req.Service})
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) && !errors.Is(err, domain.ErrValidation) {
			h.fail(w, r, err)
			return
		}
		if h.cas.RetryLogin {
			http.Redirect(w, r, h.svc.CASLoginURL(req.Service), http.StatusFound)
			return
		}
		writeError(w, http.StatusForbidden, "authentication failed")
		return
	}

	if h.auth.CookieEnabled {
		http.SetCookie(w, h.cookie(result.Token, result.ExpiresAt))
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      toUserResponse(result.User),
	})
}

// Logout handles GET /cas/logout. It always redirects.
func (h *CASHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if h.auth.CookieName != "" {
		c := h.cookie("", time.Unix(0, 0))
		c.MaxAge = -1
		http.SetCookie(w, c)
	}

	next := r.URL.Query().Get("next")
	if h.cas.LogoutCompletely {
		if next != "" {
			next = h.absolute(h.safeNext(next))
		}
		http.Redirect(w, r, h.svc.CASLogoutURL(next), http.StatusFound)
		return
	}
	http.Redirect(w, r, h.safeNext(next), http.StatusFound)
}

// readLogin accepts a JSON or form-encoded body. Unreadable bodies yield an
// empty request, which the caller rejects as missing credentials.
func readLogin(w http.ResponseWriter, r *http.Request) loginRequest {
	var req loginRequest
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		_ = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		req.Ticket = r.PostFormValue("ticket")
		req.Service = r.PostFormValue("service")
	}
	req.Ticket = strings.TrimSpace(req.Ticket)
	req.Service = strings.TrimSpace(req.Service)
	return req
}

func (h *CASHandler) cookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.auth.CookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.auth.CookieDomain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// safeNext returns next when it is a local path or points at an allowed
// host, and the configured redirect URL otherwise.
func (h *CASHandler) safeNext(next string) string {
	if next == "" {
		return h.cas.RedirectURL
	}
	u, err := url.Parse(next)
	if err != nil {
		return h.cas.RedirectURL
	}
	if u.Scheme == "" && u.Host == "" {
		if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") && !strings.Contains(next, "\\") {
			return next
		}
		return h.cas.RedirectURL
	}
	if (u.Scheme == "http" || u.Scheme == "https") && slices.Contains(h.allowed, strings.ToLower(u.Hostname())) {
		return next
	}
	return h.cas.RedirectURL
}

// absolute resolves a local path against the service base URL so the CAS
// server can send the browser back to this application.
func (h *CASHandler) absolute(next string) string {
	if h.base == nil {
		return next
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() {
		return next
	}
	return h.base.ResolveReference(u).String()
}
