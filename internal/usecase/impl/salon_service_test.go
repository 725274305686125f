package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"glowdesk/internal/domain/constants"
	"glowdesk/internal/domain/entity"
	domainerrors "glowdesk/internal/domain/errors"
	"glowdesk/internal/domain/repository"
	"glowdesk/internal/domain/service"
	mockRepo "glowdesk/internal/mocks/repository"
	mockService "glowdesk/internal/mocks/service"
	"glowdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// salonServiceFixtures holds all test dependencies for salon service tests.
type salonServiceFixtures struct {
	service   usecase.SalonUsecase
	txManager *mockRepo.MockTransactionManager
	identity  *mockService.MockIdentityProvider
	publisher *mockService.MockEventPublisher
}

func createTestSalonService(t *testing.T) salonServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	identity := mockService.NewMockIdentityProvider(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSalonService(txManager, identity, publisher, logger)

	return salonServiceFixtures{
		service:   service,
		txManager: txManager,
		identity:  identity,
		publisher: publisher,
	}
}

func adminProfile() *entity.UserProfile {
	return &entity.UserProfile{ID: "uid-admin", Role: entity.RoleAdmin}
}

func validCreateInput() *usecase.CreateSalonInput {
	return &usecase.CreateSalonInput{
		Name:        "Shine Studio",
		Address:     "1 Queen St",
		Description: "Hair and nails",
		OwnerEmail:  "owner@example.com",
	}
}

func TestSalonService_CreateSalon_PromotesCustomerOwner(t *testing.T) {
	fx := createTestSalonService(t)

	ctx := context.Background()
	owner := &entity.Identity{UID: "uid-owner", Email: "owner@example.com"}

	fx.identity.EXPECT().LookupByEmail(ctx, "owner@example.com").Return(owner, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockSalonRepo := mockRepo.NewMockSalonRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().SalonRepo().Return(mockSalonRepo)

			mockProfileRepo.EXPECT().FindByID(ctx, "uid-admin").Return(adminProfile(), nil)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-owner").
				Return(&entity.UserProfile{ID: "uid-owner", Role: entity.RoleCustomer}, nil)
			mockProfileRepo.EXPECT().
				SetRole(ctx, "uid-owner", entity.RoleSalon, mock.AnythingOfType("time.Time")).Return(nil)
			mockProfileRepo.EXPECT().
				AddOwnedSalon(ctx, "uid-owner", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
			mockSalonRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(s *entity.Salon) bool {
					return s.Name == "Shine Studio" && s.OwnerID == "uid-owner" && s.ID != ""
				})).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishSalonEvent(ctx, mock.MatchedBy(func(e *service.SalonEvent) bool {
			return e.Type == constants.SalonEventCreated && e.OwnerID == "uid-owner" && e.OwnerPromoted
		})).Return(nil)

	output, err := fx.service.CreateSalon(ctx, "uid-admin", validCreateInput())

	require.NoError(t, err)
	assert.NotEmpty(t, output.ID)
}

func TestSalonService_CreateSalon_OwnerAlreadySalonNotRepromoted(t *testing.T) {
	fx := createTestSalonService(t)

	ctx := context.Background()
	owner := &entity.Identity{UID: "uid-owner", Email: "owner@example.com"}

	fx.identity.EXPECT().LookupByEmail(ctx, "owner@example.com").Return(owner, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockSalonRepo := mockRepo.NewMockSalonRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().SalonRepo().Return(mockSalonRepo)

			mockProfileRepo.EXPECT().FindByID(ctx, "uid-admin").Return(adminProfile(), nil)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-owner").
				Return(&entity.UserProfile{ID: "uid-owner", Role: entity.RoleSalon, OwnedSalons: []string{"salon-1"}}, nil)
			// No SetRole call: promotion happens at most once per identity.
			mockProfileRepo.EXPECT().
				AddOwnedSalon(ctx, "uid-owner", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
			mockSalonRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Salon")).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishSalonEvent(ctx, mock.MatchedBy(func(e *service.SalonEvent) bool {
			return !e.OwnerPromoted
		})).Return(nil)

	_, err := fx.service.CreateSalon(ctx, "uid-admin", validCreateInput())

	require.NoError(t, err)
}

func TestSalonService_CreateSalon_MissingOwnerGetsPlaceholder(t *testing.T) {
	fx := createTestSalonService(t)

	ctx := context.Background()
	owner := &entity.Identity{UID: "uid-fresh", Email: "owner@example.com", DisplayName: "Fresh Owner"}

	fx.identity.EXPECT().LookupByEmail(ctx, "owner@example.com").Return(owner, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockSalonRepo := mockRepo.NewMockSalonRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().SalonRepo().Return(mockSalonRepo)

			mockProfileRepo.EXPECT().FindByID(ctx, "uid-admin").Return(adminProfile(), nil)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-fresh").Return(nil, repository.ErrProfileNotFound)
			// The placeholder is born with the salon role and the ownership
			// already recorded, so a later first sign-in only touches it.
			mockProfileRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
					return p.ID == "uid-fresh" && p.Role == entity.RoleSalon && len(p.OwnedSalons) == 1
				})).Return(nil)
			mockSalonRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Salon")).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().PublishSalonEvent(ctx, mock.AnythingOfType("*service.SalonEvent")).Return(nil)

	_, err := fx.service.CreateSalon(ctx, "uid-admin", validCreateInput())

	require.NoError(t, err)
}

func TestSalonService_CreateSalon_UnresolvedOwnerWritesNothing(t *testing.T) {
	fx := createTestSalonService(t)

	ctx := context.Background()

	fx.identity.EXPECT().LookupByEmail(ctx, "owner@example.com").Return(nil, service.ErrIdentityNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-admin").Return(adminProfile(), nil)

			return fn(mockFactory)
		})

	_, err := fx.service.CreateSalon(ctx, "uid-admin", validCreateInput())

	assert.ErrorIs(t, err, domainerrors.ErrOwnerNotFound)
}

func TestSalonService_CreateSalon_NonAdminDeniedBeforeLookup(t *testing.T) {
	fx := createTestSalonService(t)

	ctx := context.Background()

	// The guard fires before the directory lookup, so an unresolvable owner
	// email still yields a permission error for a non-admin caller.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-customer").
				Return(&entity.UserProfile{ID: "uid-customer", Role: entity.RoleCustomer}, nil)

			return fn(mockFactory)
		})

	input := validCreateInput()
	input.OwnerEmail = "nobody@example.com"

	_, err := fx.service.CreateSalon(ctx, "uid-customer", input)

	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestSalonService_CreateSalon_RejectsMissingFields(t *testing.T) {
	fx := createTestSalonService(t)

	input := validCreateInput()
	input.Address = "  "

	_, err := fx.service.CreateSalon(context.Background(), "uid-admin", input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestSalonService_UpdateSalon_PartialFieldsOnly(t *testing.T) {
	fx := createTestSalonService(t)

	ctx := context.Background()
	address := "2 King St"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockSalonRepo := mockRepo.NewMockSalonRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().SalonRepo().Return(mockSalonRepo)

			mockProfileRepo.EXPECT().FindByID(ctx, "uid-admin").Return(adminProfile(), nil)
			mockSalonRepo.EXPECT().FindByID(ctx, "salon-1").Return(&entity.Salon{ID: "salon-1"}, nil)
			mockSalonRepo.EXPECT().
				Update(ctx, "salon-1", mock.MatchedBy(func(c *repository.SalonChanges) bool {
					return c.Address != nil && *c.Address == address &&
						c.Name == nil && c.Description == nil && c.OwnerID == nil
				}), mock.AnythingOfType("time.Time")).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishSalonEvent(ctx, mock.MatchedBy(func(e *service.SalonEvent) bool {
			return e.Type == constants.SalonEventUpdated && e.SalonID == "salon-1"
		})).Return(nil)

	err := fx.service.UpdateSalon(ctx, "uid-admin", "salon-1", &usecase.UpdateSalonInput{Address: &address})

	require.NoError(t, err)
}

func TestSalonService_UpdateSalon_OwnerTransferPromotes(t *testing.T) {
	fx := createTestSalonService(t)

	ctx := context.Background()
	email := "next@example.com"
	next := &entity.Identity{UID: "uid-next", Email: email}

	fx.identity.EXPECT().LookupByEmail(ctx, email).Return(next, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockSalonRepo := mockRepo.NewMockSalonRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().SalonRepo().Return(mockSalonRepo)

			mockProfileRepo.EXPECT().FindByID(ctx, "uid-admin").Return(adminProfile(), nil)
			mockSalonRepo.EXPECT().FindByID(ctx, "salon-1").Return(&entity.Salon{ID: "salon-1"}, nil)
			mockProfileRepo.EXPECT().FindByID(ctx, "uid-next").
				Return(&entity.UserProfile{ID: "uid-next", Role: entity.RoleCustomer}, nil)
			mockProfileRepo.EXPECT().
				SetRole(ctx, "uid-next", entity.RoleSalon, mock.AnythingOfType("time.Time")).Return(nil)
			mockProfileRepo.EXPECT().
				AddOwnedSalon(ctx, "uid-next", "salon-1", mock.AnythingOfType("time.Time")).Return(nil)
			mockSalonRepo.EXPECT().
				Update(ctx, "salon-1", mock.MatchedBy(func(c *repository.SalonChanges) bool {
					return c.OwnerID != nil && *c.OwnerID == "uid-next"
				}), mock.AnythingOfType("time.Time")).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishSalonEvent(ctx, mock.MatchedBy(func(e *service.SalonEvent) bool {
			return e.OwnerPromoted && e.OwnerID == "uid-next"
		})).Return(nil)

	err := fx.service.UpdateSalon(ctx, "uid-admin", "salon-1", &usecase.UpdateSalonInput{OwnerEmail: &email})

	require.NoError(t, err)
}

func TestSalonService_UpdateSalon_NotFound(t *testing.T) {
	fx := createTestSalonService(t)

	ctx := context.Background()
	name := "New Name"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockSalonRepo := mockRepo.NewMockSalonRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().SalonRepo().Return(mockSalonRepo)

			mockProfileRepo.EXPECT().FindByID(ctx, "uid-admin").Return(adminProfile(), nil)
			mockSalonRepo.EXPECT().FindByID(ctx, "salon-gone").Return(nil, repository.ErrSalonNotFound)

			return fn(mockFactory)
		})

	err := fx.service.UpdateSalon(ctx, "uid-admin", "salon-gone", &usecase.UpdateSalonInput{Name: &name})

	assert.ErrorIs(t, err, domainerrors.ErrSalonNotFound)
}

func TestSalonService_UpdateSalon_RejectsEmptyChangeSet(t *testing.T) {
	fx := createTestSalonService(t)

	err := fx.service.UpdateSalon(context.Background(), "uid-admin", "salon-1", &usecase.UpdateSalonInput{})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestSalonService_DeleteSalon_MissingIDIsNoop(t *testing.T) {
	fx := createTestSalonService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockSalonRepo := mockRepo.NewMockSalonRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().SalonRepo().Return(mockSalonRepo)

			mockProfileRepo.EXPECT().FindByID(ctx, "uid-admin").Return(adminProfile(), nil)
			mockSalonRepo.EXPECT().Delete(ctx, "salon-gone").Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishSalonEvent(ctx, mock.MatchedBy(func(e *service.SalonEvent) bool {
			return e.Type == constants.SalonEventDeleted
		})).Return(nil)

	err := fx.service.DeleteSalon(ctx, "uid-admin", "salon-gone")

	require.NoError(t, err)
}

func TestSalonService_UpsertStaff_KeyedByResolvedIdentity(t *testing.T) {
	fx := createTestSalonService(t)

	ctx := context.Background()
	staffIdentity := &entity.Identity{UID: "uid-staff", Email: "stylist@example.com"}

	fx.identity.EXPECT().LookupByEmail(ctx, "stylist@example.com").Return(staffIdentity, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockSalonRepo := mockRepo.NewMockSalonRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().SalonRepo().Return(mockSalonRepo)

			mockProfileRepo.EXPECT().FindByID(ctx, "uid-admin").Return(adminProfile(), nil)
			mockSalonRepo.EXPECT().
				UpsertStaff(ctx, "salon-1", mock.MatchedBy(func(s *entity.SalonStaff) bool {
					return s.ID == "uid-staff" && s.Role == "stylist"
				})).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.UpsertStaff(ctx, "uid-admin", "salon-1", &usecase.UpsertStaffInput{
		Name:  "Sam",
		Email: "stylist@example.com",
		Role:  "stylist",
	})

	require.NoError(t, err)
}

func TestSalonService_RemoveStaff_RequiresIDs(t *testing.T) {
	fx := createTestSalonService(t)

	err := fx.service.RemoveStaff(context.Background(), "uid-admin", "salon-1", "")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}
