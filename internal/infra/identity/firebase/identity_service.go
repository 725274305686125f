// Package firebase adapts the Firebase Auth admin SDK to the domain's
// IdentityProvider interface.
package firebase

import (
	"context"
	"log/slog"

	"glowdesk/config"
	"glowdesk/internal/domain/entity"
	"glowdesk/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type identityService struct {
	client *auth.Client
	logger *slog.Logger
}

// NewIdentityService creates an IdentityProvider backed by Firebase Auth.
func NewIdentityService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opts := []option.ClientOption{}
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &identityService{
		client: client,
		logger: logger,
	}, nil
}

// VerifyIDToken verifies a session ID token and returns the identity it was
// issued for. Name and picture come from the token claims when present.
func (s *identityService) VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify id token")
	}

	identity := &entity.Identity{
		UID:         token.UID,
		Email:       claimString(token.Claims, "email"),
		DisplayName: claimString(token.Claims, "name"),
		PhotoURL:    claimString(token.Claims, "picture"),
	}

	return identity, nil
}

// LookupByEmail resolves an email address through the Firebase Auth directory.
func (s *identityService) LookupByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	record, err := s.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, errors.WithStack(service.ErrIdentityNotFound)
		}

		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	return &entity.Identity{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhotoURL:    record.PhotoURL,
	}, nil
}

// RevokeSessions invalidates every refresh token issued to the identity.
func (s *identityService) RevokeSessions(ctx context.Context, uid string) error {
	if err := s.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	s.logger.Info("Revoked refresh tokens", slog.String("uid", uid))

	return nil
}

func claimString(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}

	return ""
}
