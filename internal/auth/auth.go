package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
)

// Principal is the authenticated identity of the current request.
type Principal struct {
	// UserID is the identity provider's ID for the user.
	UserID string

	// Email is the email of the user.
	Email string

	// DisplayName is the display name of the user.
	DisplayName string

	// PhotoURL is the avatar URL of the user.
	PhotoURL string

	// Admin indicates the email is on the configured admin allow-list.
	Admin bool
}

type principalContextKey struct{}

var principalContextKeyInstance = principalContextKey{}

// ParseAllowList parses a comma-separated email allow-list into
// lower-cased entries, dropping empty ones.
func ParseAllowList(csv string) []string {
	var emails []string
	for _, e := range strings.Split(csv, ",") {
		if e := strings.ToLower(strings.TrimSpace(e)); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

// IsAdmin checks if the email is on the allow-list, case-insensitively.
func IsAdmin(email string, allowList []string) bool {
	if email == "" {
		return false
	}
	email = strings.ToLower(email)
	for _, e := range allowList {
		if e == email {
			return true
		}
	}
	return false
}

// Middleware derives a Principal from the verified Firebase token and
// stores it in the request context. It must run after the firebaseauth
// middleware.
func Middleware(adminAllowList []string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if tok := firebaseauth.TokenFromContext(ctx); tok != nil {
				p := Principal{UserID: tok.UID}
				if id, ok := tok.Firebase.Identities["email"]; ok {
					if idAny, ok := id.([]any); ok && len(idAny) > 0 {
						if email, ok := idAny[0].(string); ok {
							p.Email = email
						}
					}
				}
				if p.Email == "" {
					if email, ok := tok.Claims["email"].(string); ok {
						p.Email = email
					}
				}
				if name, ok := tok.Claims["name"].(string); ok {
					p.DisplayName = name
				}
				if photo, ok := tok.Claims["picture"].(string); ok {
					p.PhotoURL = photo
				}
				p.Admin = IsAdmin(p.Email, adminAllowList)
				ctx = context.WithValue(ctx, principalContextKeyInstance, p)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NewContext returns a context carrying the principal, for tests and
// internal calls.
func NewContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKeyInstance, p)
}

// PrincipalFromContext returns the principal of the request, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKeyInstance).(Principal)
	return p, ok
}

// RequireAdmin rejects requests whose principal is not an admin. The
// admin flag is computed server-side from the allow-list, never taken
// from the client.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := PrincipalFromContext(r.Context()); !ok || !p.Admin {
			http.Error(w, "permission denied", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
