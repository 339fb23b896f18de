package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halaleats/backend/internal/api/middleware"
)

type stubVerifier struct {
	subject string
	err     error
	tokens  []string
}

func (s *stubVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	s.tokens = append(s.tokens, token)
	if s.err != nil {
		return "", s.err
	}
	return s.subject, nil
}

func protectedHandler(t *testing.T, wantSubject string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := middleware.SubjectFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantSubject, subject)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	verifier := &stubVerifier{}
	handler := middleware.AuthMiddleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest("GET", "/api/users", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Unauthorized - No token provided", body["error"])
	assert.Empty(t, verifier.tokens, "verifier must not be called without a token")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	verifier := &stubVerifier{}
	handler := middleware.AuthMiddleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a malformed header")
	}))

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Authorization", "token abc123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("expired")}
	handler := middleware.AuthMiddleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Invalid or expired token", body["error"])
}

func TestAuthMiddleware_ValidTokenAttachesSubject(t *testing.T) {
	verifier := &stubVerifier{subject: "firebase-uid-1"}
	handler := middleware.AuthMiddleware(verifier)(protectedHandler(t, "firebase-uid-1"))

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"good-token"}, verifier.tokens)
}

func TestAuthMiddleware_ReverifiesEveryRequest(t *testing.T) {
	verifier := &stubVerifier{subject: "firebase-uid-1"}
	handler := middleware.AuthMiddleware(verifier)(protectedHandler(t, "firebase-uid-1"))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/users", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Len(t, verifier.tokens, 3)
}
