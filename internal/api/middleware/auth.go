package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/halaleats/backend/internal/domain/providers"
	"github.com/halaleats/backend/internal/infrastructure/observability"
)

type contextKey string

const subjectContextKey contextKey = "auth.subject"

// SubjectFromContext returns the verified subject UID attached by the auth
// middleware, or false when the request was not authenticated.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectContextKey).(string)
	return subject, ok && subject != ""
}

// ContextWithSubject attaches a verified subject UID to the context. Exported
// for handler tests.
func ContextWithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectContextKey, subject)
}

// AuthMiddleware authenticates requests with a bearer token. A missing token
// is rejected with 401 before any verification; an invalid or expired token
// is rejected with 403. On success the verified subject UID is attached to
// the request context. Every request re-verifies its token; results are not
// cached.
func AuthMiddleware(verifier providers.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized - No token provided")
				return
			}

			subject, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				logger := observability.LoggerFromContext(r.Context())
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("token verification failed")
				writeAuthError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithSubject(r.Context(), subject)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func writeAuthError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
