package repository

import (
	"context"
	"errors"
	"time"

	"glowdesk/internal/domain/entity"
)

// ErrSalonNotFound is a domain-specific error returned when a salon is not found.
var ErrSalonNotFound = errors.New("salon not found")

// SalonChanges describes a partial update to a salon record. Nil fields are
// left untouched by the update.
type SalonChanges struct {
	Name        *string
	Address     *string
	Description *string
	OwnerID     *string
}

// Empty reports whether the change set carries no field at all.
func (c *SalonChanges) Empty() bool {
	return c == nil || (c.Name == nil && c.Address == nil && c.Description == nil && c.OwnerID == nil)
}

// SalonRepository defines the standard operations for salon persistence.
type SalonRepository interface {
	// FindByID retrieves a single salon by its ID.
	FindByID(ctx context.Context, id string) (*entity.Salon, error)

	// Create persists a new salon to the storage.
	Create(ctx context.Context, salon *entity.Salon) error

	// Update applies only the supplied fields and always refreshes updatedAt.
	// Returns ErrSalonNotFound when no salon exists for the ID.
	Update(ctx context.Context, id string, changes *SalonChanges, at time.Time) error

	// Delete removes the salon record. Deleting a nonexistent ID is a no-op.
	Delete(ctx context.Context, id string) error

	// ListStaff retrieves the staff records scoped under a salon.
	ListStaff(ctx context.Context, salonID string) ([]*entity.SalonStaff, error)

	// UpsertStaff creates or replaces a staff record under a salon.
	UpsertStaff(ctx context.Context, salonID string, staff *entity.SalonStaff) error

	// RemoveStaff deletes a staff record. Removing a nonexistent ID is a no-op.
	RemoveStaff(ctx context.Context, salonID, staffID string) error
}
