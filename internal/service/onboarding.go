package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jrmeyers92/client-portals/internal/config"
	"github.com/jrmeyers92/client-portals/internal/database/models"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/identity"
	"github.com/jrmeyers92/client-portals/internal/logger"
	"github.com/jrmeyers92/client-portals/internal/repository"
	"github.com/jrmeyers92/client-portals/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OnboardingOptions carries the tunables of a new tenant
type OnboardingOptions struct {
	TrialDays             int
	StorageLimitBytes     int64
	LogoFolder            string
	IdentityFailurePolicy string
	CleanupTimeout        time.Duration
}

// OnboardingOptionsFromConfig reads the onboarding options from the application config
func OnboardingOptionsFromConfig(cfg *config.Config) OnboardingOptions {
	return OnboardingOptions{
		TrialDays:             cfg.TrialDays,
		StorageLimitBytes:     cfg.StorageLimitBytes,
		LogoFolder:            cfg.LogoFolder,
		IdentityFailurePolicy: cfg.IdentityFailurePolicy,
		CleanupTimeout:        cfg.CleanupTimeout(),
	}
}

func (o OnboardingOptions) withDefaults() OnboardingOptions {
	if o.TrialDays <= 0 {
		o.TrialDays = 14
	}
	if o.StorageLimitBytes <= 0 {
		o.StorageLimitBytes = 10737418240
	}
	if o.LogoFolder == "" {
		o.LogoFolder = "organization-logos"
	}
	if o.IdentityFailurePolicy == "" {
		o.IdentityFailurePolicy = config.IdentityFailureAcceptDrift
	}
	if o.CleanupTimeout <= 0 {
		o.CleanupTimeout = 30 * time.Second
	}
	return o
}

// OnboardingResponse is returned when a tenant was created
type OnboardingResponse struct {
	OrganizationID uuid.UUID `json:"organizationId"`
	Slug           string    `json:"slug"`
	IdentitySynced bool      `json:"identitySynced"`
}

// OnboardingService creates a tenant for a principal, coordinating the asset store,
// the tenant registry and the identity directory
type OnboardingService struct {
	repo      repository.OrganizationRepositoryInterface
	assets    storage.AssetStore
	directory identity.Directory
	repairs   identity.RepairQueue
	validator *OnboardingValidator
	opts      OnboardingOptions
	now       func() time.Time
}

// NewOnboardingService creates a new onboarding service. assets and repairs may be nil:
// without an asset store logo uploads fail, without a repair queue drift is only logged.
func NewOnboardingService(
	repo repository.OrganizationRepositoryInterface,
	assets storage.AssetStore,
	directory identity.Directory,
	repairs identity.RepairQueue,
	validator *OnboardingValidator,
	opts OnboardingOptions,
) *OnboardingService {
	return &OnboardingService{
		repo:      repo,
		assets:    assets,
		directory: directory,
		repairs:   repairs,
		validator: validator,
		opts:      opts.withDefaults(),
		now:       time.Now,
	}
}

// SetClock overrides the time source used for trial end dates
func (s *OnboardingService) SetClock(now func() time.Time) {
	s.now = now
}

// CompleteOrganizationOnboarding validates the request, uploads the logo, inserts the
// tenant and records the owner role on the principal. Every returned error is an
// *apperrors.OnboardingError. Assets written by a failed attempt are deleted before
// returning.
func (s *OnboardingService) CompleteOrganizationOnboarding(ctx context.Context, req *OnboardingRequest, principalID string) (resp *OnboardingResponse, err error) {
	ctx = logger.ContextWithPrincipal(ctx, principalID)
	log := logger.WithContext(ctx)
	undo := &compensator{}

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("onboarding panicked")
			resp, err = nil, s.fail(ctx, undo, apperrors.KindInternalError, fmt.Errorf("panic: %v", r))
		}
	}()

	// 1. Validate
	valid, verr := s.validator.ValidateOnboarding(req)
	if verr != nil {
		oe := apperrors.NewOnboardingError(apperrors.KindValidationFailed, verr)
		var violations apperrors.ValidationErrors
		if errors.As(verr, &violations) {
			oe.Details = violations
		}
		return nil, oe
	}
	log = log.WithField("slug", valid.Slug)

	// 2. Authenticate
	if principalID == "" {
		return nil, apperrors.NewOnboardingError(apperrors.KindAuthenticationRequired, nil)
	}

	// 3. Advisory uniqueness checks; the unique indexes are authoritative
	exists, err := s.exists(ctx, s.repo.GetByOwnerPrincipalID, principalID)
	if err != nil {
		return nil, s.fail(ctx, undo, apperrors.KindInternalError, fmt.Errorf("lookup by owner: %w", err))
	}
	if exists {
		return nil, apperrors.NewOnboardingError(apperrors.KindDuplicateOwner, nil)
	}
	exists, err = s.exists(ctx, s.repo.GetBySlug, valid.Slug)
	if err != nil {
		return nil, s.fail(ctx, undo, apperrors.KindInternalError, fmt.Errorf("lookup by slug: %w", err))
	}
	if exists {
		return nil, apperrors.NewOnboardingError(apperrors.KindSlugTaken, nil)
	}

	// 4. Logo upload
	var logoURL *string
	if valid.Logo != nil {
		ref, err := s.uploadLogo(ctx, valid.Logo, principalID)
		if err != nil {
			log.WithError(err).Error("logo upload failed")
			oe := apperrors.NewOnboardingError(apperrors.KindUploadFailed, err)
			oe.Details = err.Error()
			return nil, oe
		}
		undo.push("delete logo "+ref.Key, func(ctx context.Context) error {
			return s.assets.Delete(ctx, []storage.AssetRef{ref})
		})
		logoURL = &ref.URL
	}

	// 5. Tenant insert
	org := s.buildOrganization(valid, principalID, logoURL)
	if err := s.repo.Create(ctx, org); err != nil {
		log.WithError(err).Error("failed to create organization")
		return nil, s.fail(ctx, undo, apperrors.KindPersistenceFailed, err)
	}
	log = log.WithField("organization_id", org.ID)

	if s.opts.IdentityFailurePolicy == config.IdentityFailureRollback {
		undo.pushGuard("delete organization "+org.ID.String(), func(ctx context.Context) error {
			return s.repo.Delete(ctx, org.ID)
		})
	} else {
		// the tenant now references the uploaded assets
		undo.discard()
	}

	// 6. Identity update
	orgID := org.ID.String()
	metadata := identity.Metadata{
		Role:               models.RoleOrganizationOwner,
		OnboardingComplete: true,
		OrganizationID:     &orgID,
	}
	synced := true
	if err := s.setMetadata(ctx, principalID, metadata); err != nil {
		if s.opts.IdentityFailurePolicy == config.IdentityFailureRollback {
			log.WithError(err).Error("identity update failed, rolling back organization")
			return nil, s.fail(ctx, undo, apperrors.KindPersistenceFailed, fmt.Errorf("identity update: %w", err))
		}
		log.WithError(err).Warn("identity update failed after organization was created, accepting drift")
		s.enqueueRepair(ctx, principalID, metadata, err)
		synced = false
	}

	log.Info("organization onboarding completed")
	return &OnboardingResponse{OrganizationID: org.ID, Slug: org.Slug, IdentitySynced: synced}, nil
}

// exists runs a registry lookup, treating not-found as absence
func (s *OnboardingService) exists(ctx context.Context, lookup func(context.Context, string) (*models.Organization, error), key string) (bool, error) {
	org, err := lookup(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return org != nil, nil
}

func (s *OnboardingService) uploadLogo(ctx context.Context, logo *storage.Asset, principalID string) (storage.AssetRef, error) {
	if s.assets == nil {
		return storage.AssetRef{}, apperrors.ErrStorageNotConfigured
	}
	return s.assets.Put(ctx, *logo, s.opts.LogoFolder, principalID)
}

func (s *OnboardingService) buildOrganization(valid *ValidatedOnboarding, principalID string, logoURL *string) *models.Organization {
	trialEnds := s.now().AddDate(0, 0, s.opts.TrialDays)
	return &models.Organization{
		Name:                valid.OrganizationName,
		Slug:                valid.Slug,
		LogoURL:             logoURL,
		PrimaryColor:        valid.PrimaryColor,
		SecondaryColor:      valid.SecondaryColor,
		OwnerPrincipalID:    principalID,
		OwnerEmail:          valid.OwnerEmail,
		OwnerName:           valid.OwnerName,
		EmailFromName:       valid.EmailFromName,
		SubscriptionTier:    models.SubscriptionTierTrial,
		SubscriptionStatus:  models.SubscriptionStatusTrialing,
		TrialEndsAt:         &trialEnds,
		StorageUsedBytes:    0,
		StorageLimitBytes:   s.opts.StorageLimitBytes,
		OnboardingCompleted: true,
		OnboardingStep:      1,
	}
}

// fail runs the compensation stack and wraps cause as an OnboardingError of the given kind
func (s *OnboardingService) fail(ctx context.Context, undo *compensator, kind apperrors.Kind, cause error) *apperrors.OnboardingError {
	if failed := undo.run(ctx, s.opts.CleanupTimeout); failed > 0 {
		logger.WithContext(ctx).WithField("failed_steps", failed).Warn("compensation incomplete")
	}
	oe := apperrors.NewOnboardingError(kind, cause)
	if cause != nil {
		oe.Details = cause.Error()
	}
	return oe
}

// setMetadata runs the directory update, reporting a panic as an error so it follows
// the identity failure policy like any other failure
func (s *OnboardingService) setMetadata(ctx context.Context, principalID string, metadata identity.Metadata) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("identity directory panicked: %v", r)
		}
	}()
	return s.directory.SetMetadata(ctx, principalID, metadata)
}

func (s *OnboardingService) enqueueRepair(ctx context.Context, principalID string, metadata identity.Metadata, cause error) {
	log := logger.WithContext(ctx)
	if s.repairs == nil {
		log.Warn("no identity repair queue configured, drift must be repaired manually")
		return
	}
	err := s.repairs.Enqueue(context.WithoutCancel(ctx), identity.Repair{
		PrincipalID: principalID,
		Metadata:    metadata,
		Reason:      cause.Error(),
		EnqueuedAt:  s.now().UTC(),
	})
	if err != nil {
		log.WithError(err).Error("failed to enqueue identity repair")
	}
}
