// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"glowdesk/internal/domain/entity"
)

// SessionState is an explicit snapshot of the identity-provider mirror.
// Resolving is true only until the first transition (either direction) has
// been fully processed once.
type SessionState struct {
	Resolving bool                `json:"resolving"`
	Identity  *entity.Identity    `json:"identity,omitempty"`
	Role      entity.Role         `json:"role,omitempty"`
	Profile   *entity.UserProfile `json:"profile,omitempty"`
}

// SignedIn reports whether the state currently holds an identity.
func (s SessionState) SignedIn() bool {
	return s.Identity != nil
}

// SessionUsecase mirrors identity-provider state into application state.
// Transitions are serialized by a single writer; a signed-in transition runs
// the profile lifecycle, and when the profile cannot be ensured the session
// is forced out rather than left authenticated-but-profile-less.
type SessionUsecase interface {
	// SignIn processes a signed-in transition: verifies the ID token, ensures
	// the caller's profile, and records identity and role.
	SignIn(ctx context.Context, idToken string) (*SessionState, error)

	// SignOut processes a signed-out transition, clearing identity, role, and
	// any cached profile.
	SignOut(ctx context.Context)

	// Snapshot returns the current mirrored state.
	Snapshot() SessionState
}
