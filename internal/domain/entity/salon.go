// Package entity contains the core business objects of the project.
package entity

import "time"

// Salon is the primary managed business entity. Every salon has exactly one
// owning UserProfile; it is created and deleted only through the admin-only
// mutation operations, never directly by clients.
type Salon struct {
	ID          string    `json:"id"`                    // The unique identifier for the salon.
	Name        string    `json:"name"`                  // The salon's display name.
	Address     string    `json:"address"`               // The full street address.
	Description string    `json:"description,omitempty"` // A free-form description of the salon and its services.
	OwnerID     string    `json:"owner_id"`              // References the UserProfile that administers this salon.
	CreatedAt   time.Time `json:"created_at"`            // Timestamp of when the salon record was created.
	UpdatedAt   time.Time `json:"updated_at"`            // Timestamp of the last modification.
}

// SalonStaff is a staff record scoped under a salon. Its ID is the staff
// member's identity UID.
type SalonStaff struct {
	ID        string    `json:"id"`         // The staff member's identity UID.
	Name      string    `json:"name"`       // The staff member's display name.
	Email     string    `json:"email"`      // The staff member's contact email.
	Role      string    `json:"role"`       // The in-salon role, e.g. "stylist".
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the staff record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
