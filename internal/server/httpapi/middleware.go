package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/taskvault/internal/server/auth"
	"github.com/dmitrijs2005/taskvault/internal/server/models"
)

// Identity is the authenticated principal resolved by the bearer token
// middleware and consumed by the task handlers.
type Identity struct {
	ID    string
	Email string
	Name  string
}

type contextKey string

const identityContextKey contextKey = "identity"

func identityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(*Identity)
	return id, ok
}

// UserResolver resolves the user behind a verified token subject.
type UserResolver interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// BearerAuth verifies the Authorization header, resolves the identity
// behind the token and stores it in the request context. Requests without
// a token are rejected before signature verification is attempted.
func BearerAuth(secret []byte, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "Token not provided")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			claims, err := auth.ParseToken(token, secret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			user, err := users.GetByID(r.Context(), claims.Subject)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			identity := &Identity{ID: user.ID, Email: user.Email, Name: user.Name}
			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORS sets the allow-origin headers and short-circuits preflight requests.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
