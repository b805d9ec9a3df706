package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "userID"

// SessionValidator checks a bearer token and resolves the owning user.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (uuid.UUID, bool, error)
}

// Auth guards routes behind bearer session tokens.
type Auth struct {
	sessions SessionValidator
}

func NewAuth(sessions SessionValidator) *Auth {
	return &Auth{sessions: sessions}
}

// RequireAuth validates the Authorization header and stores the authenticated
// user's ID in the request context. Missing or invalid credentials yield 401.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			unauthorized(w)
			return
		}
		userID, ok, err := a.sessions.Validate(r.Context(), token)
		if err != nil || !ok {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID.String())))
	})
}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID returns the authenticated user's ID from the request context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// ExtractBearerToken returns the token from an "Authorization: Bearer ..."
// header value, or "".
func ExtractBearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": "Authentication required",
	})
}
