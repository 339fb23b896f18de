package firebase

import (
	"context"
	"encoding/base64"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/halaleats/backend/pkg/config"
	apperrors "github.com/halaleats/backend/pkg/errors"
)

// Client wraps the Firebase Auth client used to verify bearer tokens.
type Client struct {
	auth *auth.Client
}

// NewClient initializes the Firebase app from base64-encoded service account
// credentials and returns a token-verifying client.
func NewClient(ctx context.Context, cfg *config.FirebaseConfig) (*Client, error) {
	if cfg.CredentialsBase64 == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	}
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID environment variable is missing")
	}

	credentials, err := base64.StdEncoding.DecodeString(cfg.CredentialsBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Firebase credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: cfg.ProjectID},
		option.WithCredentialsJSON(credentials),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase Auth client: %w", err)
	}

	return &Client{auth: authClient}, nil
}

// VerifyToken verifies the given ID token against Firebase and returns the
// subject UID. Each call re-verifies; verification results are never cached.
func (c *Client) VerifyToken(ctx context.Context, token string) (string, error) {
	decoded, err := c.auth.VerifyIDToken(ctx, token)
	if err != nil {
		return "", apperrors.NewForbiddenError("Invalid or expired token")
	}
	return decoded.UID, nil
}
