package service

import (
	"context"

	"github.com/jrmeyers92/client-portals/internal/database/models"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/identity"
	"github.com/jrmeyers92/client-portals/internal/logger"
)

// RoleResponse is returned when a role was recorded
type RoleResponse struct {
	Role models.Role `json:"role"`
}

// RoleService records the role a principal picked during sign-up
type RoleService struct {
	directory identity.Directory
}

// NewRoleService creates a new role service
func NewRoleService(directory identity.Directory) *RoleService {
	return &RoleService{directory: directory}
}

// SetRole writes the role to the principal's metadata. Plain users are done with
// onboarding; organization owners still have to create their organization.
func (s *RoleService) SetRole(ctx context.Context, principalID string, role models.Role) (*RoleResponse, error) {
	if principalID == "" {
		return nil, apperrors.NewOnboardingError(apperrors.KindAuthenticationRequired, nil)
	}
	if !role.IsValid() {
		oe := apperrors.NewOnboardingError(apperrors.KindValidationFailed, apperrors.ErrInvalidRole)
		oe.Message = "Invalid role"
		return nil, oe
	}

	ctx = logger.ContextWithPrincipal(ctx, principalID)
	metadata := identity.Metadata{
		Role:               role,
		OnboardingComplete: role == models.RoleUser,
	}
	if err := s.directory.SetMetadata(ctx, principalID, metadata); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("role", role).Error("failed to set role")
		oe := apperrors.NewOnboardingError(apperrors.KindInternalError, err)
		oe.Details = err.Error()
		return nil, oe
	}

	return &RoleResponse{Role: role}, nil
}
