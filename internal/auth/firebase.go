package auth

import (
	"context"
	"encoding/base64"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// Verifier validates Firebase ID tokens and resolves the caller's email.
type Verifier struct {
	client *fbauth.Client
}

// NewVerifier builds a Firebase Auth client from a base64-encoded service
// account JSON blob (deploy platforms mangle raw multi-line JSON env values,
// hence the encoding).
func NewVerifier(ctx context.Context, serviceKey string) (*Verifier, error) {
	decoded, err := base64.StdEncoding.DecodeString(serviceKey)
	if err != nil {
		return nil, errors.Wrap(err, "decode FB_SERVICE_KEY")
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(decoded))
	if err != nil {
		return nil, errors.Wrap(err, "initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get Firebase auth client")
	}

	return &Verifier{client: client}, nil
}

// Verify checks the ID token and returns the verified email claim.
func (v *Verifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", errors.Wrap(err, "verify ID token")
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return "", errors.New("token carries no email claim")
	}
	return email, nil
}
