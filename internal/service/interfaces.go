package service

import (
	"context"

	"github.com/jrmeyers92/client-portals/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OnboardingServiceInterface defines the interface for the onboarding service
type OnboardingServiceInterface interface {
	CompleteOrganizationOnboarding(ctx context.Context, req *OnboardingRequest, principalID string) (*OnboardingResponse, error)
}

// RoleServiceInterface defines the interface for the role service
type RoleServiceInterface interface {
	SetRole(ctx context.Context, principalID string, role models.Role) (*RoleResponse, error)
}

// OrganizationServiceInterface defines the interface for organization reads
type OrganizationServiceInterface interface {
	GetMine(ctx context.Context, principalID string) (*OrganizationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error)
	CheckSlugAvailability(ctx context.Context, slug string) (*SlugAvailabilityResponse, error)
	SuggestSlug(ctx context.Context, name string) (*SlugAvailabilityResponse, error)
}

var (
	_ OnboardingServiceInterface   = (*OnboardingService)(nil)
	_ RoleServiceInterface         = (*RoleService)(nil)
	_ OrganizationServiceInterface = (*OrganizationService)(nil)
)
