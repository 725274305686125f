// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	"glowdesk/internal/domain/entity"
	domainerrors "glowdesk/internal/domain/errors"
	"glowdesk/internal/domain/repository"

	"github.com/pkg/errors"
)

// assertAdmin evaluates the authorization guard: is the caller's stored role
// admin. It performs exactly one profile read and no mutation, and must
// complete before any guarded mutation is attempted.
func assertAdmin(ctx context.Context, profiles repository.ProfileRepository, callerID string) error {
	if callerID == "" {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	profile, err := profiles.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrPermissionDenied, "caller has no profile")
		}

		return errors.Wrap(err, "failed to read caller profile")
	}

	if profile.Role != entity.RoleAdmin {
		return errors.Wrap(domainerrors.ErrPermissionDenied, "caller is not an admin")
	}

	return nil
}
