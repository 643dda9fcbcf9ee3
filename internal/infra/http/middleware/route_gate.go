package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/santaan/crm-api/internal/infra/auth"
)

// IdentityReader yields the logged-in identity attached to a request, if any.
type IdentityReader interface {
	Identity(r *http.Request) (*auth.Identity, bool)
}

// AdminAuthorizer decides admin access for an email. The allow-list path
// inside it never touches the database, so it is safe on every request.
type AdminAuthorizer interface {
	Execute(ctx context.Context, email string) bool
}

// RouteGate protects path prefixes:
//   - /admin requires a logged-in identity authorized as admin
//   - /profile requires any logged-in identity
//   - static assets and the auth surface itself are never gated
//
// The decision is stateless and re-evaluated on every request.
func RouteGate(identities IdentityReader, authorizer AdminAuthorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if isUngated(path) {
				next.ServeHTTP(w, r)
				return
			}

			switch {
			case hasPrefix(path, "/admin"):
				id, ok := identities.Identity(r)
				if !ok {
					RecordAdminDenied()
					deny(w, http.StatusUnauthorized, "login required")
					return
				}
				if !authorizer.Execute(r.Context(), id.Email) {
					RecordAdminDenied()
					deny(w, http.StatusForbidden, "admin access required")
					return
				}

			case hasPrefix(path, "/profile"):
				if _, ok := identities.Identity(r); !ok {
					deny(w, http.StatusUnauthorized, "login required")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isUngated(path string) bool {
	return hasPrefix(path, "/auth") ||
		hasPrefix(path, "/static") ||
		hasPrefix(path, "/assets")
}

// hasPrefix matches whole path segments, so /administration is not /admin.
func hasPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
