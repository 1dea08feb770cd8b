package firebase

import (
	"brigada-service/internal/config"
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseService wraps the Admin SDK auth client used to verify the ID
// tokens issued to the mobile app.
type FirebaseService struct {
	app    *firebase.App
	client *auth.Client
}

func NewFirebaseService(cfg config.FirebaseConfig) (*FirebaseService, error) {
	ctx := context.Background()

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: cfg.ProjectID,
	}, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting auth client: %v", err)
	}

	return &FirebaseService{
		app:    app,
		client: client,
	}, nil
}

// VerifyIDToken validates the bearer token and returns its decoded claims.
// Verification results are never cached across requests.
func (f *FirebaseService) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}
	return token, nil
}
