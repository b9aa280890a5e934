package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"watchparty/internal/models"
)

type ctxKey string

const ctxUserKey ctxKey = "user"

// CurrentUser returns the identity the API-key gate resolved for this
// request.
func CurrentUser(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(ctxUserKey).(models.User)
	return u, ok
}

// KeyResolver turns a presented API key into a user identity.
type KeyResolver interface {
	ResolveAPIKey(ctx context.Context, apiKey string) (models.User, error)
}

// APIKeyAuth is the gate in front of every protected route: it resolves the
// Authorization header to a user and injects the identity into the request
// context. It does no per-resource scoping; any valid key authorizes any
// protected operation.
type APIKeyAuth struct {
	Resolver KeyResolver
}

func NewAPIKeyAuth(r KeyResolver) *APIKeyAuth {
	return &APIKeyAuth{Resolver: r}
}

type errResp struct {
	Error string `json:"error"`
}

func (m *APIKeyAuth) writeErr(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errResp{Error: msg})
}

// Require accepts the raw key in the Authorization header; a conventional
// "Bearer " prefix is tolerated and stripped.
func (m *APIKeyAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("Authorization")
		if strings.HasPrefix(strings.ToLower(key), "bearer ") {
			key = strings.TrimSpace(key[len("Bearer "):])
		}
		if key == "" {
			m.writeErr(w, http.StatusForbidden, "API key required")
			return
		}

		user, err := m.Resolver.ResolveAPIKey(r.Context(), key)
		if err != nil {
			m.writeErr(w, http.StatusForbidden, "Invalid API key")
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
