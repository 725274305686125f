// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"glowdesk/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// EnsureProfile guarantees a profile exists for the verified caller
	// identity, creating one with defaults on first contact, else touching the
	// last-login marker. It only ever acts on the caller's own identity.
	EnsureProfile(ctx context.Context, identity *entity.Identity) (*entity.UserProfile, error)

	// GetProfile retrieves a profile. Callers may read their own profile;
	// reading another profile requires the admin role.
	GetProfile(ctx context.Context, callerID, targetID string) (*entity.UserProfile, error)

	// ListProfiles retrieves every profile of the application instance.
	// Admin only.
	ListProfiles(ctx context.Context, callerID string) ([]*entity.UserProfile, error)
}
