package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/auth"
	"github.com/heartmarshall/trainrec-backend/internal/domain"
	"github.com/heartmarshall/trainrec-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Claims, error)
}

type userResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// TokenSource says where session tokens are read from.
type TokenSource struct {
	// HeaderPrefix is matched case-insensitively, e.g. "Bearer".
	HeaderPrefix string
	// CookieName is consulted when the header carries no token. Empty disables it.
	CookieName string
}

// Auth attaches a request identity. A valid token yields an identity whose
// user is loaded on first use; anything else yields an anonymous identity.
// Auth never rejects a request.
func Auth(validator tokenValidator, users userResolver, src TokenSource) Middleware {
	resolve := auth.UserResolver(users.GetByID)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := auth.IdentityFromCtx(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			identity := auth.Anonymous()
			if token := extractToken(r, src); token != "" {
				if claims, err := validator.ValidateAccessToken(token); err == nil {
					identity = auth.NewIdentity(claims.UserID, resolve)
				}
			}

			ctx := auth.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests without an active user with 401 and stores
// the user id and role in the context for the services.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromCtx(r.Context())
		user := identity.User(r.Context())
		if user == nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := ctxutil.WithUserID(r.Context(), user.ID)
		ctx = ctxutil.WithRole(ctx, user.Role.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(r *http.Request, src TokenSource) string {
	if token := bearerToken(r.Header.Get("Authorization"), src.HeaderPrefix); token != "" {
		return token
	}
	if src.CookieName != "" {
		if c, err := r.Cookie(src.CookieName); err == nil {
			return strings.TrimSpace(c.Value)
		}
	}
	return ""
}

func bearerToken(header, prefix string) string {
	if prefix == "" {
		prefix = "Bearer"
	}
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, prefix) {
		return ""
	}
	return strings.TrimSpace(token)
}
