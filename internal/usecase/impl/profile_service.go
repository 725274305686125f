// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "glowdesk/internal/delivery/context"
	"glowdesk/internal/domain/entity"
	domainerrors "glowdesk/internal/domain/errors"
	"glowdesk/internal/domain/repository"
	"glowdesk/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureProfile guarantees a profile document exists for the verified caller
// identity. The operation is idempotent with respect to profile existence:
// it never creates more than one profile per identity and never regresses
// role, ownership, or createdAt.
func (srv *profileService) EnsureProfile(ctx context.Context, identity *entity.Identity) (*entity.UserProfile, error) {
	if identity == nil || identity.UID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	srv.log(ctx).Debug("Ensuring profile", slog.String("uid", identity.UID))

	var profile *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		now := time.Now()

		existing, err := profileRepo.FindByID(ctx, identity.UID)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to read profile")
		}

		if existing == nil {
			// First contact: create with defaults. A placeholder profile
			// created by an ownership grant is found above and only touched,
			// so a correct role/ownership is never overwritten with defaults.
			profile = &entity.UserProfile{
				ID:          identity.UID,
				Email:       identity.Email,
				DisplayName: identity.DisplayName,
				PhotoURL:    identity.PhotoURL,
				Role:        entity.RoleCustomer,
				CreatedAt:   now,
				LastLoginAt: now,
				UpdatedAt:   now,
			}

			if err := profileRepo.Create(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to create profile")
			}

			return nil
		}

		if err := profileRepo.TouchLastLogin(ctx, identity.UID, now); err != nil {
			return errors.Wrap(err, "failed to touch last login")
		}

		existing.LastLoginAt = now
		profile = existing

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("failed to ensure profile", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to ensure profile")
	}

	return profile, nil
}

// GetProfile retrieves a single profile. An identity may read its own
// profile; reading another profile requires the admin role.
func (srv *profileService) GetProfile(ctx context.Context, callerID, targetID string) (*entity.UserProfile, error) {
	if callerID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if targetID == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "target id is required")
	}

	srv.log(ctx).Debug("Getting profile", slog.String("target_id", targetID))

	var profile *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		if targetID != callerID {
			if err := assertAdmin(ctx, profileRepo, callerID); err != nil {
				return err
			}
		}

		found, err := profileRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// ListProfiles retrieves every profile of the application instance. Admin only.
func (srv *profileService) ListProfiles(ctx context.Context, callerID string) ([]*entity.UserProfile, error) {
	srv.log(ctx).Debug("Listing profiles")

	var profiles []*entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		if err := assertAdmin(ctx, profileRepo, callerID); err != nil {
			return err
		}

		found, err := profileRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		profiles = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}
