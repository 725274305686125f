package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"glowdesk/internal/delivery/api/middleware"
	"glowdesk/internal/delivery/api/router/handler"
	"glowdesk/internal/delivery/api/validator"
	"glowdesk/internal/domain/entity"
	mockService "glowdesk/internal/mocks/service"
	mockUsecase "glowdesk/internal/mocks/usecase"
	"glowdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	sessionUC *mockUsecase.MockSessionUsecase
	profileUC *mockUsecase.MockProfileUsecase
	salonUC   *mockUsecase.MockSalonUsecase
	identity  *mockService.MockIdentityProvider
	echo      *echo.Echo
}

func createTestRouter(t *testing.T) routerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	salonUC := mockUsecase.NewMockSalonUsecase(t)
	identity := mockService.NewMockIdentityProvider(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, Logger: logger}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: profileUC, Logger: logger}),
		SalonHandler:   handler.NewSalonHandler(handler.SalonHandlerParams{SalonUC: salonUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(identity),
	})
	r.RegisterRoutes(e)

	return routerFixtures{
		sessionUC: sessionUC,
		profileUC: profileUC,
		salonUC:   salonUC,
		identity:  identity,
		echo:      e,
	}
}

func TestRegisterRoutes_SignInStaysOpen(t *testing.T) {
	f := createTestRouter(t)

	f.sessionUC.EXPECT().
		SignIn(mock.Anything, "valid-token").
		Return(&usecase.SessionState{
			Identity: &entity.Identity{UID: "user-1", Email: "amy@example.com"},
			Role:     entity.RoleCustomer,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(`{"id_token":"valid-token"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterRoutes_ReadingSessionRequiresToken(t *testing.T) {
	f := createTestRouter(t)

	// No Snapshot expectation: the request must be rejected before the handler.
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()

	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestRegisterRoutes_ClearingSessionRequiresToken(t *testing.T) {
	f := createTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	rec := httptest.NewRecorder()

	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterRoutes_ReadingSessionWithToken(t *testing.T) {
	f := createTestRouter(t)

	f.identity.EXPECT().
		VerifyIDToken(mock.Anything, "valid-token").
		Return(&entity.Identity{UID: "user-1", Email: "amy@example.com"}, nil)
	f.sessionUC.EXPECT().
		Snapshot().
		Return(usecase.SessionState{
			Identity: &entity.Identity{UID: "user-1", Email: "amy@example.com", DisplayName: "Amy"},
			Role:     entity.RoleSalon,
			Profile: &entity.UserProfile{
				ID:          "user-1",
				Email:       "amy@example.com",
				DisplayName: "Amy",
				Role:        entity.RoleSalon,
				OwnedSalons: []string{"salon-1"},
			},
		})

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	rec := httptest.NewRecorder()

	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// Entity fields serialize with snake_case wire names.
	body := rec.Body.String()
	assert.Contains(t, body, `"display_name":"Amy"`)
	assert.Contains(t, body, `"owned_salons":["salon-1"]`)
	assert.NotContains(t, body, "OwnedSalons")
}

func TestRegisterRoutes_APIGroupRequiresToken(t *testing.T) {
	f := createTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	rec := httptest.NewRecorder()

	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterRoutes_HealthStaysOpen(t *testing.T) {
	f := createTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
