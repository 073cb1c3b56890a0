package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrmeyers92/client-portals/internal/database/models"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create inserts a new organization. The slug and owner unique indexes are the
// authoritative uniqueness guard; a violation is returned as ErrOrganizationExists.
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	err := r.db.WithContext(ctx).Create(org).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", apperrors.ErrOrganizationExists, err)
	}
	return err
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByOwnerPrincipalID retrieves the organization owned by a principal
func (r *OrganizationRepository) GetByOwnerPrincipalID(ctx context.Context, principalID string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, "owner_principal_id = ?", principalID).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetBySlug retrieves an organization by slug
func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update saves every column of an existing organization. A slug or owner taken by
// another tenant is returned as ErrOrganizationExists.
func (r *OrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	err := r.db.WithContext(ctx).Save(org).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", apperrors.ErrOrganizationExists, err)
	}
	return err
}

// Delete deletes an organization
func (r *OrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Organization{}, "id = ?", id).Error
}
