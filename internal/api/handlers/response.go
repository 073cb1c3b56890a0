package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   string         `json:"error" example:"This portal URL is already taken. Please choose another."`
	Kind    apperrors.Kind `json:"kind,omitempty" example:"slug_taken"`
	Details interface{}    `json:"details,omitempty" swaggertype:"object"`
}

// SuccessResponse is the success envelope
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Organization onboarding completed successfully"`
	Data    interface{} `json:"data,omitempty"`
}

// StatusForKind maps an outcome kind to its HTTP status
func StatusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidationFailed:
		return http.StatusBadRequest
	case apperrors.KindAuthenticationRequired:
		return http.StatusUnauthorized
	case apperrors.KindDuplicateOwner, apperrors.KindSlugTaken:
		return http.StatusConflict
	case apperrors.KindUploadFailed:
		return http.StatusBadGateway
	case apperrors.KindPersistenceFailed, apperrors.KindInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorWriter renders service errors; details are only exposed outside production
type errorWriter struct {
	exposeDetails bool
}

func (w errorWriter) write(c *gin.Context, err error) {
	var oe *apperrors.OnboardingError
	if !errors.As(err, &oe) {
		oe = classify(err)
	}

	resp := ErrorResponse{Success: false, Error: oe.Message, Kind: oe.Kind}
	if w.exposeDetails {
		resp.Details = oe.Details
		if resp.Details == nil && oe.Unwrap() != nil {
			resp.Details = oe.Unwrap().Error()
		}
	}

	status := StatusForKind(oe.Kind)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).WithField("kind", oe.Kind).Error("request failed")
	}
	c.JSON(status, resp)
}

// classify maps errors from the read-side services onto outcome kinds
func classify(err error) *apperrors.OnboardingError {
	var violations apperrors.ValidationErrors
	switch {
	case errors.As(err, &violations):
		oe := apperrors.NewOnboardingError(apperrors.KindValidationFailed, err)
		oe.Details = violations
		return oe
	case apperrors.IsValidation(err):
		return apperrors.NewOnboardingError(apperrors.KindValidationFailed, err)
	case apperrors.IsAuthentication(err):
		return apperrors.NewOnboardingError(apperrors.KindAuthenticationRequired, err)
	default:
		return apperrors.NewOnboardingError(apperrors.KindInternalError, err)
	}
}

func notFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, ErrorResponse{Success: false, Error: err.Error()})
}
