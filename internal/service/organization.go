package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jrmeyers92/client-portals/internal/database/models"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService serves read access to tenants
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *OnboardingValidator
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validator *OnboardingValidator) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		validator: validator,
	}
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID                  uuid.UUID                 `json:"id"`
	Name                string                    `json:"name"`
	Slug                string                    `json:"slug"`
	LogoURL             *string                   `json:"logoUrl"`
	PrimaryColor        string                    `json:"primaryColor"`
	SecondaryColor      string                    `json:"secondaryColor"`
	EmailFromName       string                    `json:"emailFromName"`
	SubscriptionTier    models.SubscriptionTier   `json:"subscriptionTier"`
	SubscriptionStatus  models.SubscriptionStatus `json:"subscriptionStatus"`
	TrialEndsAt         *time.Time                `json:"trialEndsAt,omitempty"`
	StorageUsedBytes    int64                     `json:"storageUsedBytes"`
	StorageLimitBytes   int64                     `json:"storageLimitBytes"`
	OnboardingCompleted bool                      `json:"onboardingCompleted"`
	CreatedAt           string                    `json:"createdAt"`
}

// SlugAvailabilityResponse reports whether a slug can be claimed right now
type SlugAvailabilityResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

// GetMine returns the organization owned by the principal
func (s *OrganizationService) GetMine(ctx context.Context, principalID string) (*OrganizationResponse, error) {
	if principalID == "" {
		return nil, apperrors.ErrPrincipalNotFound
	}
	org, err := s.repo.GetByOwnerPrincipalID(ctx, principalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// CheckSlugAvailability validates the slug and reports whether it is free. The answer is
// advisory: a concurrent onboarding may still claim it first.
func (s *OrganizationService) CheckSlugAvailability(ctx context.Context, slug string) (*SlugAvailabilityResponse, error) {
	if err := s.validator.ValidateSlug(slug); err != nil {
		return nil, err
	}
	_, err := s.repo.GetBySlug(ctx, slug)
	switch {
	case err == nil:
		return &SlugAvailabilityResponse{Slug: slug, Available: false}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &SlugAvailabilityResponse{Slug: slug, Available: true}, nil
	default:
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
}

// SuggestSlug derives a slug from an organization name and checks it
func (s *OrganizationService) SuggestSlug(ctx context.Context, name string) (*SlugAvailabilityResponse, error) {
	slug := GenerateSlug(name)
	if err := s.validator.ValidateSlug(slug); err != nil {
		return &SlugAvailabilityResponse{Slug: slug, Available: false}, nil
	}
	return s.CheckSlugAvailability(ctx, slug)
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:                  org.ID,
		Name:                org.Name,
		Slug:                org.Slug,
		LogoURL:             org.LogoURL,
		PrimaryColor:        org.PrimaryColor,
		SecondaryColor:      org.SecondaryColor,
		EmailFromName:       org.EmailFromName,
		SubscriptionTier:    org.SubscriptionTier,
		SubscriptionStatus:  org.SubscriptionStatus,
		TrialEndsAt:         org.TrialEndsAt,
		StorageUsedBytes:    org.StorageUsedBytes,
		StorageLimitBytes:   org.StorageLimitBytes,
		OnboardingCompleted: org.OnboardingCompleted,
		CreatedAt:           org.CreatedAt.Format(time.RFC3339),
	}
}
