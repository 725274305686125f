// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "glowdesk/internal/delivery/context"
	"glowdesk/internal/domain/constants"
	"glowdesk/internal/domain/entity"
	domainerrors "glowdesk/internal/domain/errors"
	"glowdesk/internal/domain/repository"
	"glowdesk/internal/domain/service"
	"glowdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// salonService implements the SalonUsecase interface.
type salonService struct {
	txManager repository.TransactionManager
	identity  service.IdentityProvider
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewSalonService is the constructor for salonService.
func NewSalonService(
	txManager repository.TransactionManager,
	identity service.IdentityProvider,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.SalonUsecase {
	return &salonService{
		txManager: txManager,
		identity:  identity,
		publisher: publisher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *salonService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSalon creates a new salon record, resolving the owner email to an
// identity and opportunistically promoting that identity's role. The owner
// side effect and the salon write run inside one store transaction, so no
// partial mutation is visible if either write fails.
func (srv *salonService) CreateSalon(ctx context.Context, callerID string, input *usecase.CreateSalonInput) (*usecase.CreateSalonOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "input is required")
	}
	for field, value := range map[string]string{
		"name":        input.Name,
		"address":     input.Address,
		"description": input.Description,
		"owner_email": input.OwnerEmail,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, errors.Wrapf(domainerrors.ErrInvalidArgument, "%s is required", field)
		}
	}

	srv.log(ctx).Info("Creating salon", slog.String("name", input.Name))

	salonID := uuid.New().String()
	var promoted bool
	var ownerID string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		// The guard short-circuits before the directory lookup or any write.
		if err := assertAdmin(ctx, profileRepo, callerID); err != nil {
			return err
		}

		owner, err := srv.resolveOwner(ctx, input.OwnerEmail)
		if err != nil {
			return err
		}
		ownerID = owner.UID

		now := time.Now()
		promoted, err = srv.grantOwnership(ctx, profileRepo, owner, salonID, now)
		if err != nil {
			return err
		}

		salon := &entity.Salon{
			ID:          salonID,
			Name:        input.Name,
			Address:     input.Address,
			Description: input.Description,
			OwnerID:     owner.UID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repoFactory.SalonRepo().Create(ctx, salon); err != nil {
			return errors.Wrap(err, "failed to create salon")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("failed to create salon", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create salon")
	}

	srv.publishEvent(ctx, constants.SalonEventCreated, salonID, ownerID, promoted)

	return &usecase.CreateSalonOutput{
		ID:      salonID,
		Message: "salon created",
	}, nil
}

// GetSalon retrieves a single salon by ID.
func (srv *salonService) GetSalon(ctx context.Context, callerID, salonID string) (*entity.Salon, error) {
	if callerID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if salonID == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "salon id is required")
	}

	var salon *entity.Salon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SalonRepo().FindByID(ctx, salonID)
		if err != nil {
			if errors.Is(err, repository.ErrSalonNotFound) {
				return errors.Wrap(domainerrors.ErrSalonNotFound, "salon not found")
			}

			return errors.Wrap(err, "failed to find salon")
		}
		salon = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get salon")
	}

	return salon, nil
}

// UpdateSalon applies only the supplied fields and always refreshes
// updatedAt. Supplying a new owner email transfers ownership with the same
// resolution and promotion semantics as creation.
func (srv *salonService) UpdateSalon(ctx context.Context, callerID, salonID string, input *usecase.UpdateSalonInput) error {
	if salonID == "" {
		return errors.Wrap(domainerrors.ErrInvalidArgument, "salon id is required")
	}
	if input.Empty() {
		return errors.Wrap(domainerrors.ErrInvalidArgument, "no field to change")
	}

	srv.log(ctx).Info("Updating salon", slog.String("salon_id", salonID))

	var promoted bool
	var ownerID string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		if err := assertAdmin(ctx, profileRepo, callerID); err != nil {
			return err
		}

		// Existence is checked up front: the store forbids reads once the
		// ownership writes below have been enqueued.
		if _, err := repoFactory.SalonRepo().FindByID(ctx, salonID); err != nil {
			if errors.Is(err, repository.ErrSalonNotFound) {
				return errors.Wrap(domainerrors.ErrSalonNotFound, "salon not found")
			}

			return errors.Wrap(err, "failed to find salon")
		}

		changes := &repository.SalonChanges{
			Name:        input.Name,
			Address:     input.Address,
			Description: input.Description,
		}

		now := time.Now()

		if input.OwnerEmail != nil {
			owner, err := srv.resolveOwner(ctx, *input.OwnerEmail)
			if err != nil {
				return err
			}
			ownerID = owner.UID

			promoted, err = srv.grantOwnership(ctx, profileRepo, owner, salonID, now)
			if err != nil {
				return err
			}
			changes.OwnerID = &owner.UID
		}

		if err := repoFactory.SalonRepo().Update(ctx, salonID, changes, now); err != nil {
			if errors.Is(err, repository.ErrSalonNotFound) {
				return errors.Wrap(domainerrors.ErrSalonNotFound, "salon not found")
			}

			return errors.Wrap(err, "failed to update salon")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("failed to update salon", slog.Any("error", err))

		return errors.Wrap(err, "failed to update salon")
	}

	srv.publishEvent(ctx, constants.SalonEventUpdated, salonID, ownerID, promoted)

	return nil
}

// DeleteSalon deletes the salon record. Deleting a nonexistent ID succeeds as
// a no-op. Dependent staff records and bookings are not cleaned up here.
func (srv *salonService) DeleteSalon(ctx context.Context, callerID, salonID string) error {
	if salonID == "" {
		return errors.Wrap(domainerrors.ErrInvalidArgument, "salon id is required")
	}

	srv.log(ctx).Info("Deleting salon", slog.String("salon_id", salonID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := assertAdmin(ctx, repoFactory.ProfileRepo(), callerID); err != nil {
			return err
		}

		if err := repoFactory.SalonRepo().Delete(ctx, salonID); err != nil {
			return errors.Wrap(err, "failed to delete salon")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("failed to delete salon", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete salon")
	}

	srv.publishEvent(ctx, constants.SalonEventDeleted, salonID, "", false)

	return nil
}

// ListStaff retrieves the staff records of a salon. Admin only.
func (srv *salonService) ListStaff(ctx context.Context, callerID, salonID string) ([]*entity.SalonStaff, error) {
	if salonID == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "salon id is required")
	}

	var staff []*entity.SalonStaff

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := assertAdmin(ctx, repoFactory.ProfileRepo(), callerID); err != nil {
			return err
		}

		found, err := repoFactory.SalonRepo().ListStaff(ctx, salonID)
		if err != nil {
			return errors.Wrap(err, "failed to list staff")
		}
		staff = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	return staff, nil
}

// UpsertStaff creates or replaces a staff record under a salon. Admin only.
func (srv *salonService) UpsertStaff(ctx context.Context, callerID, salonID string, input *usecase.UpsertStaffInput) error {
	if salonID == "" {
		return errors.Wrap(domainerrors.ErrInvalidArgument, "salon id is required")
	}
	if input == nil || strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Role) == "" {
		return errors.Wrap(domainerrors.ErrInvalidArgument, "name, email and role are required")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := assertAdmin(ctx, repoFactory.ProfileRepo(), callerID); err != nil {
			return err
		}

		staffIdentity, err := srv.resolveOwner(ctx, input.Email)
		if err != nil {
			return err
		}

		now := time.Now()
		staff := &entity.SalonStaff{
			ID:        staffIdentity.UID,
			Name:      input.Name,
			Email:     input.Email,
			Role:      input.Role,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := repoFactory.SalonRepo().UpsertStaff(ctx, salonID, staff); err != nil {
			return errors.Wrap(err, "failed to upsert staff")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("failed to upsert staff", slog.Any("error", err))

		return errors.Wrap(err, "failed to upsert staff")
	}

	return nil
}

// RemoveStaff deletes a staff record under a salon. Admin only.
func (srv *salonService) RemoveStaff(ctx context.Context, callerID, salonID, staffID string) error {
	if salonID == "" || staffID == "" {
		return errors.Wrap(domainerrors.ErrInvalidArgument, "salon id and staff id are required")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := assertAdmin(ctx, repoFactory.ProfileRepo(), callerID); err != nil {
			return err
		}

		if err := repoFactory.SalonRepo().RemoveStaff(ctx, salonID, staffID); err != nil {
			return errors.Wrap(err, "failed to remove staff")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to remove staff")
	}

	return nil
}

// resolveOwner resolves an email address to an identity through the
// provider's directory.
func (srv *salonService) resolveOwner(ctx context.Context, email string) (*entity.Identity, error) {
	owner, err := srv.identity.LookupByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOwnerNotFound, "owner email does not resolve")
		}

		return nil, errors.Wrap(err, "failed to look up owner email")
	}

	return owner, nil
}

// grantOwnership applies the ownership side effect for a resolved owner
// identity: the salon ID joins the owner's owned set, a default role is
// promoted to salon, and a missing profile becomes a placeholder already
// bearing the correct role and ownership. The placeholder ordering matters:
// when that user eventually signs in, the profile lifecycle finds a profile
// and only touches lastLoginAt instead of overwriting it with defaults.
func (srv *salonService) grantOwnership(ctx context.Context, profileRepo repository.ProfileRepository, owner *entity.Identity, salonID string, now time.Time) (promoted bool, err error) {
	profile, err := profileRepo.FindByID(ctx, owner.UID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return false, errors.Wrap(err, "failed to read owner profile")
	}

	if profile == nil {
		placeholder := &entity.UserProfile{
			ID:          owner.UID,
			Email:       owner.Email,
			DisplayName: owner.DisplayName,
			PhotoURL:    owner.PhotoURL,
			Role:        entity.RoleSalon,
			OwnedSalons: []string{salonID},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := profileRepo.Create(ctx, placeholder); err != nil {
			return false, errors.Wrap(err, "failed to create owner placeholder profile")
		}

		return false, nil
	}

	// Promotion is one-way and only from the default role; admin stays admin.
	if profile.Role == entity.RoleCustomer {
		if err := profileRepo.SetRole(ctx, owner.UID, entity.RoleSalon, now); err != nil {
			return false, errors.Wrap(err, "failed to promote owner role")
		}
		promoted = true
	}

	if err := profileRepo.AddOwnedSalon(ctx, owner.UID, salonID, now); err != nil {
		return false, errors.Wrap(err, "failed to record salon ownership")
	}

	return promoted, nil
}

// publishEvent publishes a salon mutation event. Publishing is best-effort
// and never fails the mutation; failures are logged with context.
func (srv *salonService) publishEvent(ctx context.Context, eventType, salonID, ownerID string, promoted bool) {
	if srv.publisher == nil {
		return
	}

	event := &service.SalonEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		SalonID:       salonID,
		OwnerID:       ownerID,
		OwnerPromoted: promoted,
	}

	if err := srv.publisher.PublishSalonEvent(ctx, event); err != nil {
		srv.log(ctx).Error("failed to publish salon event",
			slog.String("type", eventType),
			slog.String("salon_id", salonID),
			slog.Any("error", err),
		)
	}
}
