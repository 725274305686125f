package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"glowdesk/internal/domain/entity"
	domainerrors "glowdesk/internal/domain/errors"
	"glowdesk/internal/domain/repository"
	"glowdesk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// salonRepository is a SalonRepository bound to a single Firestore
// transaction.
type salonRepository struct {
	client *Client
	tx     *firestore.Transaction
}

// FindByID retrieves a single salon by its ID.
func (r *salonRepository) FindByID(ctx context.Context, id string) (*entity.Salon, error) {
	snap, err := r.tx.Get(r.client.Salons().Doc(id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.WithStack(repository.ErrSalonNotFound)
		}

		return nil, domainerrors.NewStoreExecuteError(err, err.Error())
	}

	var m model.SalonModel
	if err := snap.DataTo(&m); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, err.Error())
	}
	m.ID = snap.Ref.ID

	return m.ToEntity(), nil
}

// Create persists a new salon document.
func (r *salonRepository) Create(ctx context.Context, salon *entity.Salon) error {
	doc := r.client.Salons().Doc(salon.ID)
	if err := r.tx.Create(doc, model.FromSalonEntity(salon)); err != nil {
		return domainerrors.NewStoreExecuteError(err, err.Error())
	}

	return nil
}

// Update applies only the supplied fields and always refreshes updatedAt.
// Existence must be verified by a read earlier in the same transaction:
// Firestore forbids reads after the first write, so this method is
// write-only and a missing document would otherwise only surface at commit.
func (r *salonRepository) Update(ctx context.Context, id string, changes *repository.SalonChanges, at time.Time) error {
	updates := []firestore.Update{
		{Path: "updatedAt", Value: at},
	}
	if changes != nil {
		if changes.Name != nil {
			updates = append(updates, firestore.Update{Path: "name", Value: *changes.Name})
		}
		if changes.Address != nil {
			updates = append(updates, firestore.Update{Path: "address", Value: *changes.Address})
		}
		if changes.Description != nil {
			updates = append(updates, firestore.Update{Path: "description", Value: *changes.Description})
		}
		if changes.OwnerID != nil {
			updates = append(updates, firestore.Update{Path: "ownerId", Value: *changes.OwnerID})
		}
	}

	if err := r.tx.Update(r.client.Salons().Doc(id), updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.WithStack(repository.ErrSalonNotFound)
		}

		return domainerrors.NewStoreExecuteError(err, err.Error())
	}

	return nil
}

// Delete removes the salon document. Deleting a nonexistent ID is a no-op.
func (r *salonRepository) Delete(ctx context.Context, id string) error {
	if err := r.tx.Delete(r.client.Salons().Doc(id)); err != nil {
		return domainerrors.NewStoreExecuteError(err, err.Error())
	}

	return nil
}

// ListStaff retrieves the staff records scoped under a salon.
func (r *salonRepository) ListStaff(ctx context.Context, salonID string) ([]*entity.SalonStaff, error) {
	iter := r.tx.Documents(r.client.Staff(salonID))
	defer iter.Stop()

	var staff []*entity.SalonStaff
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, err.Error())
		}

		var m model.StaffModel
		if err := snap.DataTo(&m); err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, err.Error())
		}
		m.ID = snap.Ref.ID
		staff = append(staff, m.ToEntity())
	}

	return staff, nil
}

// UpsertStaff creates or replaces a staff document under a salon.
func (r *salonRepository) UpsertStaff(ctx context.Context, salonID string, staff *entity.SalonStaff) error {
	doc := r.client.Staff(salonID).Doc(staff.ID)
	if err := r.tx.Set(doc, model.FromStaffEntity(staff)); err != nil {
		return domainerrors.NewStoreExecuteError(err, err.Error())
	}

	return nil
}

// RemoveStaff deletes a staff document. Removing a nonexistent ID is a no-op.
func (r *salonRepository) RemoveStaff(ctx context.Context, salonID, staffID string) error {
	if err := r.tx.Delete(r.client.Staff(salonID).Doc(staffID)); err != nil {
		return domainerrors.NewStoreExecuteError(err, err.Error())
	}

	return nil
}
