package handler

import (
	"log/slog"
	"net/http"

	"glowdesk/internal/delivery/api/middleware"
	"glowdesk/internal/delivery/api/response"
	"glowdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SalonHandlerParams holds dependencies for SalonHandler, injected by Fx.
type SalonHandlerParams struct {
	fx.In

	SalonUC usecase.SalonUsecase
	Logger  *slog.Logger
}

// SalonHandler holds dependencies for salon-related handlers
type SalonHandler struct {
	salonUC usecase.SalonUsecase
	logger  *slog.Logger
}

// NewSalonHandler is the constructor for SalonHandler
func NewSalonHandler(params SalonHandlerParams) *SalonHandler {
	return &SalonHandler{
		salonUC: params.SalonUC,
		logger:  params.Logger,
	}
}

// CreateSalonRequest represents the request body for creating a salon
type CreateSalonRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Description string `json:"description"`
	OwnerEmail  string `json:"owner_email" validate:"required,email"`
}

// UpdateSalonRequest represents the request body for updating a salon.
// Absent fields are left untouched.
type UpdateSalonRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	OwnerEmail  *string `json:"owner_email" validate:"omitempty,email"`
}

// UpsertStaffRequest represents the request body for adding or updating a staff member
type UpsertStaffRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// CreateSalon handles salon creation. Admin only.
func (h *SalonHandler) CreateSalon(c echo.Context) error {
	callerID := middleware.GetUserID(c)

	var req CreateSalonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid salon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.salonUC.CreateSalon(c.Request().Context(), callerID, &usecase.CreateSalonInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		OwnerEmail:  req.OwnerEmail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// GetSalon retrieves a single salon by ID.
func (h *SalonHandler) GetSalon(c echo.Context) error {
	callerID := middleware.GetUserID(c)

	salon, err := h.salonUC.GetSalon(c.Request().Context(), callerID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, salon)
}

// UpdateSalon applies a partial update to a salon. Admin only.
func (h *SalonHandler) UpdateSalon(c echo.Context) error {
	callerID := middleware.GetUserID(c)

	var req UpdateSalonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid salon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.salonUC.UpdateSalon(c.Request().Context(), callerID, c.Param("id"), &usecase.UpdateSalonInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		OwnerEmail:  req.OwnerEmail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Salon updated successfully"})
}

// DeleteSalon removes a salon. Admin only.
func (h *SalonHandler) DeleteSalon(c echo.Context) error {
	callerID := middleware.GetUserID(c)

	if err := h.salonUC.DeleteSalon(c.Request().Context(), callerID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Salon deleted successfully"})
}

// ListStaff retrieves the staff roster of a salon. Admin only.
func (h *SalonHandler) ListStaff(c echo.Context) error {
	callerID := middleware.GetUserID(c)

	staff, err := h.salonUC.ListStaff(c.Request().Context(), callerID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, staff)
}

// UpsertStaff adds or updates a staff member on a salon's roster. Admin only.
func (h *SalonHandler) UpsertStaff(c echo.Context) error {
	callerID := middleware.GetUserID(c)

	var req UpsertStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.salonUC.UpsertStaff(c.Request().Context(), callerID, c.Param("id"), &usecase.UpsertStaffInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Staff member saved successfully"})
}

// RemoveStaff removes a staff member from a salon's roster. Admin only.
func (h *SalonHandler) RemoveStaff(c echo.Context) error {
	callerID := middleware.GetUserID(c)

	err := h.salonUC.RemoveStaff(c.Request().Context(), callerID, c.Param("id"), c.Param("staffId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Staff member removed successfully"})
}
