package middleware

import (
	"context"
	"net/http"

	"github.com/anastasya/flower-shop/internal/api/response"
	"github.com/anastasya/flower-shop/internal/domain"
)

type contextKey string

const userKey contextKey = "user"

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"

// SessionResolver resolves a raw session token to its user. A nil user with a
// nil error means "not authenticated", never an error.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*domain.User, error)
}

// Session resolves the session cookie to a user and stores it in the request
// context. Requests without a valid session pass through anonymously; the
// role gates below decide whether that is acceptable.
func Session(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := resolver.ResolveSession(r.Context(), cookie.Value)
			if err != nil {
				response.InternalError(w)
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			// Handlers only ever need the identity; drop the credential
			// material before it enters the request context.
			sanitized := *user
			sanitized.PasswordHash = ""

			ctx := context.WithValue(r.Context(), userKey, &sanitized)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user stored by Session, if any.
func CurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r.Context()); !ok {
			response.Unauthorized(w, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects anonymous requests with 401 and authenticated requests
// lacking one of the allowed roles with 403. The split taxonomy lets clients
// distinguish "please log in" from "you lack permission".
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := CurrentUser(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			names := make([]string, 0, len(roles))
			for _, role := range roles {
				names = append(names, role.String())
			}
			response.Forbidden(w, "Access denied. Required role: "+joinOr(names))
		})
	}
}

// RequireAdmin restricts a route to back-office accounts.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(domain.RoleAdmin)(next)
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		out := names[0]
		for _, n := range names[1:] {
			out += " or " + n
		}
		return out
	}
}
