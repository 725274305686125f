// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"glowdesk/internal/domain/entity"
)

// SalonUsecase defines the interface for salon-related business operations.
// All mutating operations require the caller to hold the admin role.
type SalonUsecase interface {
	CreateSalon(ctx context.Context, callerID string, input *CreateSalonInput) (*CreateSalonOutput, error)
	GetSalon(ctx context.Context, callerID, salonID string) (*entity.Salon, error)
	UpdateSalon(ctx context.Context, callerID, salonID string, input *UpdateSalonInput) error
	DeleteSalon(ctx context.Context, callerID, salonID string) error

	ListStaff(ctx context.Context, callerID, salonID string) ([]*entity.SalonStaff, error)
	UpsertStaff(ctx context.Context, callerID, salonID string, input *UpsertStaffInput) error
	RemoveStaff(ctx context.Context, callerID, salonID, staffID string) error
}

// --- Input DTOs ---

// CreateSalonInput defines the data required to create a salon.
// OwnerEmail is resolved to an identity through the provider's directory.
type CreateSalonInput struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	OwnerEmail  string `json:"owner_email"`
}

// CreateSalonOutput is the confirmation returned after a successful creation.
type CreateSalonOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// UpdateSalonInput defines a partial salon update. Nil fields are left
// untouched; supplying OwnerEmail transfers ownership with the same
// resolution and role-promotion semantics as creation.
type UpdateSalonInput struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
	OwnerEmail  *string `json:"owner_email,omitempty"`
}

// Empty reports whether the update carries no field to change.
func (in *UpdateSalonInput) Empty() bool {
	return in == nil || (in.Name == nil && in.Address == nil && in.Description == nil && in.OwnerEmail == nil)
}

// UpsertStaffInput defines the data required to create or replace a staff
// record under a salon.
type UpsertStaffInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
