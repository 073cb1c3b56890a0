package repository

import (
	"context"

	"github.com/jrmeyers92/client-portals/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations.
// Unique slug and owner constraints are enforced by the store; Create reports a violation
// as apperrors.ErrOrganizationExists.
type OrganizationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetByOwnerPrincipalID(ctx context.Context, principalID string) (*models.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*models.Organization, error)
	Update(ctx context.Context, org *models.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
}
