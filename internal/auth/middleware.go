package auth

import (
	"net/http"
	"strings"

	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/fekuna/go-shop/pkg/httputil"
)

// Authenticate extracts the Bearer token, verifies it, and stores the
// Principal in the request context.
func Authenticate(tm *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.RespondError(w, apperrors.Unauthorized("missing authorization header"))
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				httputil.RespondError(w, apperrors.Unauthorized("invalid authorization header format"))
				return
			}

			claims, err := tm.ParseAccess(parts[1])
			if err != nil {
				httputil.RespondError(w, apperrors.Unauthorized("invalid or expired token"))
				return
			}

			principal := Principal{
				ID:    claims.Subject,
				Email: claims.Email,
				Role:  claims.Role,
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireRoles rejects requests whose principal holds none of the given roles.
// It must run after Authenticate.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
				return
			}
			for _, role := range roles {
				if principal.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			httputil.RespondError(w, apperrors.Forbidden("insufficient role"))
		})
	}
}
