// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"glowdesk/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its identity UID.
	FindByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// List retrieves all profiles of the application instance.
	List(ctx context.Context) ([]*entity.UserProfile, error)

	// Create persists a new profile to the storage.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// TouchLastLogin merge-updates lastLoginAt, leaving all other fields untouched.
	TouchLastLogin(ctx context.Context, id string, at time.Time) error

	// SetRole updates the stored role and refreshes updatedAt.
	SetRole(ctx context.Context, id string, role entity.Role, at time.Time) error

	// AddOwnedSalon appends a salon ID to the profile's owned set, without
	// duplicates, and refreshes updatedAt.
	AddOwnedSalon(ctx context.Context, id, salonID string, at time.Time) error
}
