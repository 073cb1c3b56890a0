package handlers

import (
	"net/http"

	"github.com/jrmeyers92/client-portals/internal/auth"
	"github.com/jrmeyers92/client-portals/internal/database/models"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/service"

	"github.com/gin-gonic/gin"
)

// SetRoleRequest is the body of POST /api/v1/role
type SetRoleRequest struct {
	Role models.Role `json:"role" example:"organizationOwner"`
}

// RoleHandler handles HTTP requests for principal roles
type RoleHandler struct {
	service service.RoleServiceInterface
	errors  errorWriter
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(service service.RoleServiceInterface, exposeDetails bool) *RoleHandler {
	return &RoleHandler{service: service, errors: errorWriter{exposeDetails: exposeDetails}}
}

// SetRole handles POST /api/v1/role
// @Summary Set the caller's role
// @Description Records whether the caller is a plain user or an organization owner
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body SetRoleRequest true "Role"
// @Success 200 {object} SuccessResponse{data=service.RoleResponse} "Role set successfully"
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /role [post]
func (h *RoleHandler) SetRole(c *gin.Context) {
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		oe := apperrors.NewOnboardingError(apperrors.KindValidationFailed, err)
		oe.Message = "Invalid role"
		h.errors.write(c, oe)
		return
	}

	principalID, _ := auth.GetPrincipalID(c)
	resp, err := h.service.SetRole(c.Request.Context(), principalID, req.Role)
	if err != nil {
		h.errors.write(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Role set successfully", Data: resp})
}
