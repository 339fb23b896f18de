package providers

import "context"

// TokenVerifier exchanges a bearer token for a verified subject identifier.
// The production implementation delegates to Firebase Auth.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}
