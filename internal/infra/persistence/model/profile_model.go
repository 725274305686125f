// Package model contains the persistence representations of the domain
// entities, mapped to document fields.
package model

import (
	"time"

	"glowdesk/internal/domain/entity"
)

// ProfileModel is the document representation of entity.UserProfile.
// The document ID carries the identity UID and is not stored as a field.
type ProfileModel struct {
	ID               string             `firestore:"-"`
	Email            string             `firestore:"email"`
	DisplayName      string             `firestore:"displayName"`
	PhotoURL         string             `firestore:"photoUrl"`
	Phone            string             `firestore:"phone,omitempty"`
	Address          *AddressModel      `firestore:"address,omitempty"`
	Role             string             `firestore:"role"`
	OwnedSalons      []string           `firestore:"ownedSalons"`
	AssociatedSalons []AssociationModel `firestore:"associatedSalons"`
	FavoriteSalons   []string           `firestore:"favoriteSalons"`
	CreatedAt        time.Time          `firestore:"createdAt"`
	LastLoginAt      time.Time          `firestore:"lastLoginAt"`
	UpdatedAt        time.Time          `firestore:"updatedAt"`
}

// AddressModel is the document representation of entity.Address.
type AddressModel struct {
	Line1      string `firestore:"line1"`
	Line2      string `firestore:"line2,omitempty"`
	City       string `firestore:"city"`
	PostalCode string `firestore:"postalCode"`
	Country    string `firestore:"country"`
}

// AssociationModel is the document representation of entity.SalonAssociation.
type AssociationModel struct {
	SalonID string     `firestore:"salonId"`
	Role    string     `firestore:"role"`
	StartAt time.Time  `firestore:"startAt"`
	EndAt   *time.Time `firestore:"endAt,omitempty"`
}

// FromProfileEntity converts a domain profile into its document model.
func FromProfileEntity(p *entity.UserProfile) *ProfileModel {
	m := &ProfileModel{
		ID:             p.ID,
		Email:          p.Email,
		DisplayName:    p.DisplayName,
		PhotoURL:       p.PhotoURL,
		Phone:          p.Phone,
		Role:           p.Role.String(),
		OwnedSalons:    p.OwnedSalons,
		FavoriteSalons: p.FavoriteSalons,
		CreatedAt:      p.CreatedAt,
		LastLoginAt:    p.LastLoginAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if p.Address != nil {
		m.Address = &AddressModel{
			Line1:      p.Address.Line1,
			Line2:      p.Address.Line2,
			City:       p.Address.City,
			PostalCode: p.Address.PostalCode,
			Country:    p.Address.Country,
		}
	}

	for _, assoc := range p.AssociatedSalons {
		m.AssociatedSalons = append(m.AssociatedSalons, AssociationModel{
			SalonID: assoc.SalonID,
			Role:    assoc.Role,
			StartAt: assoc.StartAt,
			EndAt:   assoc.EndAt,
		})
	}

	return m
}

// ToEntity converts the document model back into a domain profile.
func (m *ProfileModel) ToEntity() *entity.UserProfile {
	p := &entity.UserProfile{
		ID:             m.ID,
		Email:          m.Email,
		DisplayName:    m.DisplayName,
		PhotoURL:       m.PhotoURL,
		Phone:          m.Phone,
		Role:           entity.Role(m.Role),
		OwnedSalons:    m.OwnedSalons,
		FavoriteSalons: m.FavoriteSalons,
		CreatedAt:      m.CreatedAt,
		LastLoginAt:    m.LastLoginAt,
		UpdatedAt:      m.UpdatedAt,
	}

	if m.Address != nil {
		p.Address = &entity.Address{
			Line1:      m.Address.Line1,
			Line2:      m.Address.Line2,
			City:       m.Address.City,
			PostalCode: m.Address.PostalCode,
			Country:    m.Address.Country,
		}
	}

	for _, assoc := range m.AssociatedSalons {
		p.AssociatedSalons = append(p.AssociatedSalons, entity.SalonAssociation{
			SalonID: assoc.SalonID,
			Role:    assoc.Role,
			StartAt: assoc.StartAt,
			EndAt:   assoc.EndAt,
		})
	}

	return p
}
