// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "glowdesk/internal/delivery/context"
	domainerrors "glowdesk/internal/domain/errors"
	"glowdesk/internal/domain/service"
	"glowdesk/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface. It is the single
// writer of the mirrored identity state: the mutex is held for the whole
// transition, so overlapping sign-in/sign-out calls never interleave.
type sessionService struct {
	identity  service.IdentityProvider
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger

	mu    sync.Mutex
	state usecase.SessionState
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	identity service.IdentityProvider,
	profileUC usecase.ProfileUsecase,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identity:  identity,
		profileUC: profileUC,
		logger:    logger,
		state:     usecase.SessionState{Resolving: true},
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn processes a signed-in transition. When the profile cannot be
// ensured, the identity's sessions are revoked and the mirror stays signed
// out: an un-attributable identity is treated as not authenticated.
func (srv *sessionService) SignIn(ctx context.Context, idToken string) (*usecase.SessionState, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	identity, err := srv.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.state = usecase.SessionState{Resolving: false}

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "failed to verify id token")
	}

	profile, err := srv.profileUC.EnsureProfile(ctx, identity)
	if err != nil {
		srv.log(ctx).Error("failed to ensure profile on sign-in, forcing sign-out",
			slog.String("uid", identity.UID),
			slog.Any("error", err),
		)

		if revokeErr := srv.identity.RevokeSessions(ctx, identity.UID); revokeErr != nil {
			srv.log(ctx).Error("failed to revoke sessions", slog.Any("error", revokeErr))
		}

		srv.state = usecase.SessionState{Resolving: false}

		return nil, errors.Wrap(err, "failed to ensure profile")
	}

	srv.state = usecase.SessionState{
		Resolving: false,
		Identity:  identity,
		Role:      profile.Role,
		Profile:   profile,
	}
	snapshot := srv.state

	return &snapshot, nil
}

// SignOut processes a signed-out transition, clearing identity, role, and any
// cached profile.
func (srv *sessionService) SignOut(ctx context.Context) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.log(ctx).Debug("Clearing mirrored session state")
	srv.state = usecase.SessionState{Resolving: false}
}

// Snapshot returns the current mirrored state.
func (srv *sessionService) Snapshot() usecase.SessionState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}
