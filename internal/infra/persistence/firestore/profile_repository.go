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

// profileRepository is a ProfileRepository bound to a single Firestore
// transaction.
type profileRepository struct {
	client *Client
	tx     *firestore.Transaction
}

// FindByID retrieves a single profile by its identity UID.
func (r *profileRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	snap, err := r.tx.Get(r.client.Profiles().Doc(id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.WithStack(repository.ErrProfileNotFound)
		}

		return nil, domainerrors.NewStoreExecuteError(err, err.Error())
	}

	var m model.ProfileModel
	if err := snap.DataTo(&m); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, err.Error())
	}
	m.ID = snap.Ref.ID

	return m.ToEntity(), nil
}

// List retrieves all profiles of the application instance.
func (r *profileRepository) List(ctx context.Context) ([]*entity.UserProfile, error) {
	iter := r.tx.Documents(r.client.Profiles())
	defer iter.Stop()

	var profiles []*entity.UserProfile
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, err.Error())
		}

		var m model.ProfileModel
		if err := snap.DataTo(&m); err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, err.Error())
		}
		m.ID = snap.Ref.ID
		profiles = append(profiles, m.ToEntity())
	}

	return profiles, nil
}

// Create persists a new profile document. Fails if a document already exists
// for the UID, which the transaction surfaces at commit.
func (r *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	doc := r.client.Profiles().Doc(profile.ID)
	if err := r.tx.Create(doc, model.FromProfileEntity(profile)); err != nil {
		return domainerrors.NewStoreExecuteError(err, err.Error())
	}

	return nil
}

// TouchLastLogin merge-updates lastLoginAt, leaving all other fields untouched.
func (r *profileRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	err := r.tx.Update(r.client.Profiles().Doc(id), []firestore.Update{
		{Path: "lastLoginAt", Value: at},
	})
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, err.Error())
	}

	return nil
}

// SetRole updates the stored role and refreshes updatedAt.
func (r *profileRepository) SetRole(ctx context.Context, id string, role entity.Role, at time.Time) error {
	err := r.tx.Update(r.client.Profiles().Doc(id), []firestore.Update{
		{Path: "role", Value: role.String()},
		{Path: "updatedAt", Value: at},
	})
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, err.Error())
	}

	return nil
}

// AddOwnedSalon appends a salon ID to the owned set without duplicates and
// refreshes updatedAt.
func (r *profileRepository) AddOwnedSalon(ctx context.Context, id, salonID string, at time.Time) error {
	err := r.tx.Update(r.client.Profiles().Doc(id), []firestore.Update{
		{Path: "ownedSalons", Value: firestore.ArrayUnion(salonID)},
		{Path: "updatedAt", Value: at},
	})
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, err.Error())
	}

	return nil
}
