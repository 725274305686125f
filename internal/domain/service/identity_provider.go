// Package service defines interfaces for domain services backed by external
// collaborators.
package service

import (
	"context"
	"errors"

	"glowdesk/internal/domain/entity"
)

// ErrIdentityNotFound is returned when an email does not resolve to any
// identity at the provider.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityProvider defines the operations the application needs from the
// federated identity provider. Identities are issued and owned by the
// provider; the application only reads them.
type IdentityProvider interface {
	// VerifyIDToken verifies a session ID token and returns the identity it
	// was issued for.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error)

	// LookupByEmail resolves an email address to an identity via the
	// provider's directory. Returns ErrIdentityNotFound when no identity
	// exists for the address.
	LookupByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// RevokeSessions invalidates all refresh tokens issued to the identity,
	// forcing a sign-out on every device.
	RevokeSessions(ctx context.Context, uid string) error
}
