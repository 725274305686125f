package model

import (
	"time"

	"glowdesk/internal/domain/entity"
)

// SalonModel is the document representation of entity.Salon.
type SalonModel struct {
	ID          string    `firestore:"-"`
	Name        string    `firestore:"name"`
	Address     string    `firestore:"address"`
	Description string    `firestore:"description"`
	OwnerID     string    `firestore:"ownerId"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

// FromSalonEntity converts a domain salon into its document model.
func FromSalonEntity(s *entity.Salon) *SalonModel {
	return &SalonModel{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Description: s.Description,
		OwnerID:     s.OwnerID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToEntity converts the document model back into a domain salon.
func (m *SalonModel) ToEntity() *entity.Salon {
	return &entity.Salon{
		ID:          m.ID,
		Name:        m.Name,
		Address:     m.Address,
		Description: m.Description,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// StaffModel is the document representation of entity.SalonStaff, stored in a
// subcollection under its salon.
type StaffModel struct {
	ID        string    `firestore:"-"`
	Name      string    `firestore:"name"`
	Email     string    `firestore:"email"`
	Role      string    `firestore:"role"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// FromStaffEntity converts a domain staff record into its document model.
func FromStaffEntity(s *entity.SalonStaff) *StaffModel {
	return &StaffModel{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Role:      s.Role,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToEntity converts the document model back into a domain staff record.
func (m *StaffModel) ToEntity() *entity.SalonStaff {
	return &entity.SalonStaff{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
