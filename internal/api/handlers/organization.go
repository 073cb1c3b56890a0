package handlers

import (
	"errors"
	"net/http"

	"github.com/jrmeyers92/client-portals/internal/auth"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
	errors  errorWriter
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface, exposeDetails bool) *OrganizationHandler {
	return &OrganizationHandler{service: service, errors: errorWriter{exposeDetails: exposeDetails}}
}

// GetMyOrganization handles GET /api/v1/organizations/me
// @Summary Get the caller's organization
// @Description Get the organization owned by the authenticated principal
// @Tags organizations
// @Produce json
// @Success 200 {object} SuccessResponse{data=service.OrganizationResponse} "Successfully retrieved organization"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/me [get]
func (h *OrganizationHandler) GetMyOrganization(c *gin.Context) {
	principalID, _ := auth.GetPrincipalID(c)

	org, err := h.service.GetMine(c.Request.Context(), principalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			notFound(c, err)
			return
		}
		h.errors.write(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: org})
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Description Get a specific organization by its UUID
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} SuccessResponse{data=service.OrganizationResponse} "Successfully retrieved organization"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid organization ID: invalid UUID format",
			Kind:    apperrors.KindValidationFailed,
		})
		return
	}

	org, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			notFound(c, err)
			return
		}
		h.errors.write(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: org})
}

// CheckSlugAvailability handles GET /api/v1/organizations/slug-availability
// @Summary Check slug availability
// @Description Reports whether a slug is free. With name instead of slug, a slug is derived from the name first. The answer is advisory.
// @Tags organizations
// @Produce json
// @Param slug query string false "Slug to check"
// @Param name query string false "Organization name to derive a slug from"
// @Success 200 {object} SuccessResponse{data=service.SlugAvailabilityResponse} "Availability"
// @Failure 400 {object} ErrorResponse "Invalid slug"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/slug-availability [get]
func (h *OrganizationHandler) CheckSlugAvailability(c *gin.Context) {
	slug := c.Query("slug")
	name := c.Query("name")

	var (
		resp *service.SlugAvailabilityResponse
		err  error
	)
	switch {
	case slug != "":
		resp, err = h.service.CheckSlugAvailability(c.Request.Context(), slug)
	case name != "":
		resp, err = h.service.SuggestSlug(c.Request.Context(), name)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "slug or name query parameter is required",
			Kind:    apperrors.KindValidationFailed,
		})
		return
	}
	if err != nil {
		h.errors.write(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: resp})
}
