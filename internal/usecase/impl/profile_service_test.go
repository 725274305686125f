package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"glowdesk/internal/domain/entity"
	domainerrors "glowdesk/internal/domain/errors"
	"glowdesk/internal/domain/repository"
	mockRepo "glowdesk/internal/mocks/repository"
	"glowdesk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(txManager, logger)

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestProfileService_EnsureProfile_CreatesOnFirstContact(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identity := &entity.Identity{
		UID:         "uid-new",
		Email:       "new@example.com",
		DisplayName: "New User",
		PhotoURL:    "https://example.com/p.png",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-new").Return(nil, repository.ErrProfileNotFound)
			mockProfileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.UserProfile")).Return(nil)

			return fn(mockFactory)
		})

	profile, err := fx.service.EnsureProfile(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, "uid-new", profile.ID)
	assert.Equal(t, "new@example.com", profile.Email)
	assert.Equal(t, entity.RoleCustomer, profile.Role)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.Equal(t, profile.CreatedAt, profile.LastLoginAt)
}

func TestProfileService_EnsureProfile_TouchesExistingOnly(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identity := &entity.Identity{UID: "uid-owner", Email: "owner@example.com"}
	created := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	existing := &entity.UserProfile{
		ID:          "uid-owner",
		Email:       "owner@example.com",
		Role:        entity.RoleSalon,
		OwnedSalons: []string{"salon-1"},
		CreatedAt:   created,
		LastLoginAt: created,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-owner").Return(existing, nil)
			mockProfileRepo.EXPECT().TouchLastLogin(ctx, "uid-owner", mock.AnythingOfType("time.Time")).Return(nil)

			return fn(mockFactory)
		})

	profile, err := fx.service.EnsureProfile(ctx, identity)

	require.NoError(t, err)
	// Role, ownership, and createdAt survive repeat sign-ins untouched.
	assert.Equal(t, entity.RoleSalon, profile.Role)
	assert.Equal(t, []string{"salon-1"}, profile.OwnedSalons)
	assert.Equal(t, created, profile.CreatedAt)
	assert.True(t, profile.LastLoginAt.After(created))
}

func TestProfileService_EnsureProfile_RejectsMissingIdentity(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.EnsureProfile(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.EnsureProfile(context.Background(), &entity.Identity{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestProfileService_GetProfile_SelfWithoutAdmin(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	expected := &entity.UserProfile{ID: "uid-1", Role: entity.RoleCustomer}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			// Reading one's own profile needs exactly one read and no guard.
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-1").Return(expected, nil).Once()

			return fn(mockFactory)
		})

	profile, err := fx.service.GetProfile(ctx, "uid-1", "uid-1")

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_GetProfile_OtherDeniedForNonAdmin(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	caller := &entity.UserProfile{ID: "uid-customer", Role: entity.RoleCustomer}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-customer").Return(caller, nil).Once()

			return fn(mockFactory)
		})

	_, err := fx.service.GetProfile(ctx, "uid-customer", "uid-other")

	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-1").Return(nil, repository.ErrProfileNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.GetProfile(ctx, "uid-1", "uid-1")

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_ListProfiles_AdminOnly(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	admin := &entity.UserProfile{ID: "uid-admin", Role: entity.RoleAdmin}
	all := []*entity.UserProfile{admin, {ID: "uid-2", Role: entity.RoleCustomer}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-admin").Return(admin, nil)
			mockProfileRepo.EXPECT().List(ctx).Return(all, nil)

			return fn(mockFactory)
		})

	profiles, err := fx.service.ListProfiles(ctx, "uid-admin")

	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestProfileService_ListProfiles_DeniedWithoutProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-ghost").Return(nil, repository.ErrProfileNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.ListProfiles(ctx, "uid-ghost")

	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestProfileService_EnsureProfile_StoreFailureSurfaces(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	storeErr := errors.New("deadline exceeded")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.NewStoreExecuteError(storeErr, storeErr.Error()))

	_, err := fx.service.EnsureProfile(ctx, &entity.Identity{UID: "uid-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
