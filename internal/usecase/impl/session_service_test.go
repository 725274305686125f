package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"glowdesk/internal/domain/entity"
	domainerrors "glowdesk/internal/domain/errors"
	mockService "glowdesk/internal/mocks/service"
	mockUsecase "glowdesk/internal/mocks/usecase"
	"glowdesk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service   usecase.SessionUsecase
	identity  *mockService.MockIdentityProvider
	profileUC *mockUsecase.MockProfileUsecase
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	identity := mockService.NewMockIdentityProvider(t)
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSessionService(identity, profileUC, logger)

	return sessionServiceFixtures{
		service:   service,
		identity:  identity,
		profileUC: profileUC,
	}
}

func TestSessionService_StartsResolving(t *testing.T) {
	fx := createTestSessionService(t)

	state := fx.service.Snapshot()

	assert.True(t, state.Resolving)
	assert.False(t, state.SignedIn())
}

func TestSessionService_SignIn_RecordsIdentityAndRole(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	identity := &entity.Identity{UID: "uid-1", Email: "user@example.com"}
	profile := &entity.UserProfile{ID: "uid-1", Role: entity.RoleAdmin}

	fx.identity.EXPECT().VerifyIDToken(ctx, "token").Return(identity, nil)
	fx.profileUC.EXPECT().EnsureProfile(ctx, identity).Return(profile, nil)

	state, err := fx.service.SignIn(ctx, "token")

	require.NoError(t, err)
	assert.False(t, state.Resolving)
	assert.True(t, state.SignedIn())
	assert.Equal(t, entity.RoleAdmin, state.Role)
	assert.Equal(t, profile, state.Profile)
	assert.Equal(t, *state, fx.service.Snapshot())
}

func TestSessionService_SignIn_InvalidTokenLeavesSignedOut(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.identity.EXPECT().VerifyIDToken(ctx, "bad-token").Return(nil, errors.New("token expired"))

	_, err := fx.service.SignIn(ctx, "bad-token")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	state := fx.service.Snapshot()
	assert.False(t, state.Resolving)
	assert.False(t, state.SignedIn())
}

func TestSessionService_SignIn_EnsureFailureForcesSignOut(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	identity := &entity.Identity{UID: "uid-1", Email: "user@example.com"}
	ensureErr := errors.New("store unavailable")

	fx.identity.EXPECT().VerifyIDToken(ctx, "token").Return(identity, nil)
	fx.profileUC.EXPECT().EnsureProfile(ctx, identity).Return(nil, ensureErr)
	// A session without an ensurable profile is revoked, not kept half-open.
	fx.identity.EXPECT().RevokeSessions(ctx, "uid-1").Return(nil)

	_, err := fx.service.SignIn(ctx, "token")

	require.Error(t, err)
	assert.ErrorIs(t, err, ensureErr)

	state := fx.service.Snapshot()
	assert.False(t, state.Resolving)
	assert.False(t, state.SignedIn())
}

func TestSessionService_SignOut_ClearsState(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	identity := &entity.Identity{UID: "uid-1"}
	profile := &entity.UserProfile{ID: "uid-1", Role: entity.RoleCustomer}

	fx.identity.EXPECT().VerifyIDToken(ctx, "token").Return(identity, nil)
	fx.profileUC.EXPECT().EnsureProfile(ctx, identity).Return(profile, nil)

	_, err := fx.service.SignIn(ctx, "token")
	require.NoError(t, err)

	fx.service.SignOut(ctx)

	state := fx.service.Snapshot()
	assert.False(t, state.Resolving)
	assert.False(t, state.SignedIn())
	assert.Nil(t, state.Profile)
}
