package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jrmeyers92/client-portals/internal/auth"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/service"
	"github.com/jrmeyers92/client-portals/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	logoFormField = "logo"
	// room for the text fields of the form on top of the logo itself
	formOverheadBytes = 1 << 20
)

// OnboardingHandler handles HTTP requests for organization onboarding
type OnboardingHandler struct {
	service      service.OnboardingServiceInterface
	maxLogoBytes int64
	errors       errorWriter
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(service service.OnboardingServiceInterface, maxLogoBytes int64, exposeDetails bool) *OnboardingHandler {
	if maxLogoBytes <= 0 {
		maxLogoBytes = 5 * 1024 * 1024
	}
	return &OnboardingHandler{
		service:      service,
		maxLogoBytes: maxLogoBytes,
		errors:       errorWriter{exposeDetails: exposeDetails},
	}
}

// CompleteOnboarding handles POST /api/v1/onboarding
// @Summary Complete organization onboarding
// @Description Creates the caller's organization, uploads the optional logo and marks the caller as an onboarded owner. Accepts multipart/form-data (with an optional "logo" file) or JSON.
// @Tags onboarding
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param organizationName formData string true "Organization name"
// @Param slug formData string true "Portal slug"
// @Param ownerEmail formData string true "Owner email"
// @Param ownerName formData string false "Owner name"
// @Param primaryColor formData string false "Primary brand color (#RRGGBB)"
// @Param secondaryColor formData string false "Secondary brand color (#RRGGBB)"
// @Param emailFromName formData string false "Sender name for outgoing email"
// @Param logo formData file false "Organization logo"
// @Success 201 {object} SuccessResponse{data=service.OnboardingResponse} "Organization onboarding completed successfully"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 409 {object} ErrorResponse "Duplicate owner or slug taken"
// @Failure 502 {object} ErrorResponse "Logo upload failed"
// @Failure 500 {object} ErrorResponse "Persistence or internal failure"
// @Security BearerAuth
// @Router /onboarding [post]
func (h *OnboardingHandler) CompleteOnboarding(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxLogoBytes+formOverheadBytes)

	req, err := h.bindRequest(c)
	if err != nil {
		oe := apperrors.NewOnboardingError(apperrors.KindValidationFailed, err)
		oe.Details = err.Error()
		h.errors.write(c, oe)
		return
	}

	principalID, _ := auth.GetPrincipalID(c)
	resp, err := h.service.CompleteOrganizationOnboarding(c.Request.Context(), req, principalID)
	if err != nil {
		h.errors.write(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Organization onboarding completed successfully",
		Data:    resp,
	})
}

func (h *OnboardingHandler) bindRequest(c *gin.Context) (*service.OnboardingRequest, error) {
	var req service.OnboardingRequest

	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, fmt.Errorf("invalid request body: %w", err)
		}
		return &req, nil
	}

	if err := c.ShouldBindWith(&req, binding.FormMultipart); err != nil {
		return nil, fmt.Errorf("invalid form: %w", err)
	}
	logo, err := h.readLogo(c)
	if err != nil {
		return nil, err
	}
	req.Logo = logo
	return &req, nil
}

// readLogo returns nil when the form carries no logo
func (h *OnboardingHandler) readLogo(c *gin.Context) (*storage.Asset, error) {
	header, err := c.FormFile(logoFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid logo: %w", err)
	}
	if header.Size > h.maxLogoBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("invalid logo: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxLogoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("invalid logo: %w", err)
	}
	if int64(len(data)) > h.maxLogoBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	return &storage.Asset{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
		Size:        int64(len(data)),
	}, nil
}
