// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserProfile is the application-level record for a principal. It is keyed by
// the Identity UID and exists for every identity that has completed sign-in at
// least once; it is created lazily on first contact.
type UserProfile struct {
	ID               string             `json:"id"`                          // Equal to the Identity UID that owns this profile.
	Email            string             `json:"email"`                       // The principal's email, copied from the identity at creation.
	DisplayName      string             `json:"display_name"`                // The principal's display name.
	PhotoURL         string             `json:"photo_url,omitempty"`         // URL of the profile picture, may be empty.
	Phone            string             `json:"phone,omitempty"`             // Optional contact phone number.
	Address          *Address           `json:"address,omitempty"`           // Optional structured address. Nil when the user never provided one.
	Role             Role               `json:"role"`                        // The single active role. Controls authorization; exactly one at a time.
	OwnedSalons      []string           `json:"owned_salons,omitempty"`      // IDs of salons this profile administers.
	AssociatedSalons []SalonAssociation `json:"associated_salons,omitempty"` // Staff assignments held by this profile.
	FavoriteSalons   []string           `json:"favorite_salons,omitempty"`   // IDs of salons the user marked as favorites.
	CreatedAt        time.Time          `json:"created_at"`                  // Set once when the profile is first created, immutable afterwards.
	LastLoginAt      time.Time          `json:"last_login_at"`               // Advanced on every ensure call.
	UpdatedAt        time.Time          `json:"updated_at"`                  // Set on any mutation.
}

// OwnsSalon reports whether the profile administers the given salon.
func (p *UserProfile) OwnsSalon(salonID string) bool {
	for _, id := range p.OwnedSalons {
		if id == salonID {
			return true
		}
	}

	return false
}

// Address is a structured postal address attached to a profile.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// SalonAssociation records a staff assignment of a profile to a salon.
type SalonAssociation struct {
	SalonID string     `json:"salon_id"`         // The salon the profile works at.
	Role    string     `json:"role"`             // The in-salon role, e.g. "stylist", "receptionist".
	StartAt time.Time  `json:"start_at"`         // When the assignment began.
	EndAt   *time.Time `json:"end_at,omitempty"` // When the assignment ended. Nil while still active.
}
