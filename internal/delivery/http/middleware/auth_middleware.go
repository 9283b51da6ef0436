package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-cms-backend/pkg/response"
	"clinic-cms-backend/pkg/session"
)

type contextKey string

const sessionKey contextKey = "session"

// AuthMiddleware guards admin routes. The session token is issued by the
// external auth provider and arrives as a cookie, with an Authorization
// Bearer header fallback for API clients.
type AuthMiddleware struct {
	verifier    session.Verifier
	revocations session.RevocationStore
	cookieName  string
}

func NewAuthMiddleware(verifier session.Verifier, revocations session.RevocationStore, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:    verifier,
		revocations: revocations,
		cookieName:  cookieName,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.extractToken(r)
		if token == "" {
			response.Unauthorized(w, "Session token is required")
			return
		}

		sess, err := m.verifier.Verify(token)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired session")
			return
		}

		revoked, err := m.revocations.IsRevoked(r.Context(), sess.TokenID)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "Failed to validate session", "INTERNAL_ERROR")
			return
		}
		if revoked {
			response.Unauthorized(w, "Session has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// GetSessionFromContext extracts the authenticated session from context
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok
}
