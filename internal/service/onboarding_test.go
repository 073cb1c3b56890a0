package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jrmeyers92/client-portals/internal/config"
	"github.com/jrmeyers92/client-portals/internal/database/models"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/identity"
	"github.com/jrmeyers92/client-portals/internal/mocks"
	"github.com/jrmeyers92/client-portals/internal/service"
	"github.com/jrmeyers92/client-portals/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OnboardingServiceTestSuite defines the test suite for OnboardingService
type OnboardingServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockOrganizationRepositoryInterface
	mockAssets    *mocks.MockAssetStore
	mockDirectory *mocks.MockDirectory
	mockRepairs   *mocks.MockRepairQueue
	validator     *service.OnboardingValidator
	service       *service.OnboardingService
	now           time.Time
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *OnboardingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockAssets = mocks.NewMockAssetStore(suite.ctrl)
	suite.mockDirectory = mocks.NewMockDirectory(suite.ctrl)
	suite.mockRepairs = mocks.NewMockRepairQueue(suite.ctrl)
	suite.validator = service.NewOnboardingValidator(validator.New(), 5*1024*1024)
	suite.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.ctx = context.Background()
	suite.service = suite.newService(config.IdentityFailureAcceptDrift)
}

// TearDownTest cleans up after each test
func (suite *OnboardingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OnboardingServiceTestSuite) newService(policy string) *service.OnboardingService {
	svc := service.NewOnboardingService(suite.mockRepo, suite.mockAssets, suite.mockDirectory, suite.mockRepairs, suite.validator, service.OnboardingOptions{
		TrialDays:             14,
		StorageLimitBytes:     10737418240,
		LogoFolder:            "organization-logos",
		IdentityFailurePolicy: policy,
		CleanupTimeout:        time.Second,
	})
	svc.SetClock(func() time.Time { return suite.now })
	return svc
}

func acmeRequest() *service.OnboardingRequest {
	return &service.OnboardingRequest{
		OrganizationName: "Acme",
		Slug:             "acme",
		OwnerEmail:       "a@acme.com",
		PrimaryColor:     "#6366f1",
		SecondaryColor:   "#8b5cf6",
	}
}

func pngLogo() *storage.Asset {
	return &storage.Asset{Data: []byte("\x89PNG\r\n\x1a\nlogo"), ContentType: "image/png", Filename: "logo.png", Size: 12}
}

// expectNoConflicts stubs both pre-checks to report absence
func (suite *OnboardingServiceTestSuite) expectNoConflicts(principalID, slug string) {
	suite.mockRepo.EXPECT().GetByOwnerPrincipalID(gomock.Any(), principalID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetBySlug(gomock.Any(), slug).Return(nil, gorm.ErrRecordNotFound)
}

// expectCreate assigns an id the way the database does and stores the inserted row in out
func (suite *OnboardingServiceTestSuite) expectCreate(out **models.Organization) *gomock.Call {
	return suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, org *models.Organization) error {
			org.ID = uuid.New()
			*out = org
			return nil
		})
}

func (suite *OnboardingServiceTestSuite) requireKind(err error, kind apperrors.Kind) *apperrors.OnboardingError {
	suite.Require().Error(err)
	var oe *apperrors.OnboardingError
	suite.Require().True(errors.As(err, &oe), "expected *OnboardingError, got %T", err)
	suite.Require().Equal(kind, oe.Kind)
	return oe
}

// TestAcmeExample tests the documented example end to end
func (suite *OnboardingServiceTestSuite) TestAcmeExample() {
	var created *models.Organization
	suite.expectNoConflicts("user_1", "acme")
	suite.expectCreate(&created)
	suite.mockDirectory.EXPECT().SetMetadata(gomock.Any(), "user_1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, principalID string, md identity.Metadata) error {
			suite.Equal(models.RoleOrganizationOwner, md.Role)
			suite.True(md.OnboardingComplete)
			suite.Require().NotNil(md.OrganizationID)
			suite.Equal(created.ID.String(), *md.OrganizationID)
			return nil
		})

	resp, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, acmeRequest(), "user_1")

	suite.Require().NoError(err)
	suite.Equal("acme", resp.Slug)
	suite.Equal(created.ID, resp.OrganizationID)
	suite.NotEqual(uuid.Nil, resp.OrganizationID)
	suite.True(resp.IdentitySynced)

	suite.Equal("Acme", created.Name)
	suite.Equal("user_1", created.OwnerPrincipalID)
	suite.Equal("a@acme.com", created.OwnerEmail)
	suite.Nil(created.OwnerName)
	suite.Nil(created.LogoURL)
	suite.Equal("#6366f1", created.PrimaryColor)
	suite.Equal("#8b5cf6", created.SecondaryColor)
	suite.Equal("Acme", created.EmailFromName)
	suite.Equal(models.SubscriptionTierTrial, created.SubscriptionTier)
	suite.Equal(models.SubscriptionStatusTrialing, created.SubscriptionStatus)
	suite.Equal(int64(10737418240), created.StorageLimitBytes)
	suite.Equal(int64(0), created.StorageUsedBytes)
	suite.True(created.OnboardingCompleted)
	suite.Equal(1, created.OnboardingStep)
	suite.Require().NotNil(created.TrialEndsAt)
	suite.Equal(suite.now.AddDate(0, 0, 14), *created.TrialEndsAt)
}

// TestDefaultsApplied tests color and sender-name defaults plus the optional owner name
func (suite *OnboardingServiceTestSuite) TestDefaultsApplied() {
	var created *models.Organization
	req := &service.OnboardingRequest{
		OrganizationName: "Globex",
		Slug:             "globex",
		OwnerEmail:       "hank@globex.com",
		OwnerName:        "Hank Scorpio",
		EmailFromName:    "Globex Support",
	}
	suite.expectNoConflicts("user_2", "globex")
	suite.expectCreate(&created)
	suite.mockDirectory.EXPECT().SetMetadata(gomock.Any(), "user_2", gomock.Any()).Return(nil)

	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_2")

	suite.Require().NoError(err)
	suite.Equal(service.DefaultPrimaryColor, created.PrimaryColor)
	suite.Equal(service.DefaultSecondaryColor, created.SecondaryColor)
	suite.Equal("Globex Support", created.EmailFromName)
	suite.Require().NotNil(created.OwnerName)
	suite.Equal("Hank Scorpio", *created.OwnerName)
}

// TestValidationFailedHasNoSideEffects tests that nothing is read or written for invalid input
func (suite *OnboardingServiceTestSuite) TestValidationFailedHasNoSideEffects() {
	req := acmeRequest()
	req.Slug = "ac"
	req.Logo = pngLogo()

	resp, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	suite.Nil(resp)
	oe := suite.requireKind(err, apperrors.KindValidationFailed)
	suite.Equal("Please check your input and try again", oe.Message)
	violations, ok := oe.Details.(apperrors.ValidationErrors)
	suite.Require().True(ok)
	suite.Equal([]string{"slug"}, violations.Fields())
}

// TestValidationCollectsEveryViolation tests that validation is not fail-fast
func (suite *OnboardingServiceTestSuite) TestValidationCollectsEveryViolation() {
	req := &service.OnboardingRequest{
		OrganizationName: "A",
		Slug:             "Not A Slug",
		OwnerEmail:       "nope",
		PrimaryColor:     "#fff",
	}

	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "")

	oe := suite.requireKind(err, apperrors.KindValidationFailed)
	violations := oe.Details.(apperrors.ValidationErrors)
	suite.ElementsMatch([]string{"organizationName", "slug", "ownerEmail", "primaryColor"}, violations.Fields())
}

// TestAuthenticationRequired tests the empty principal
func (suite *OnboardingServiceTestSuite) TestAuthenticationRequired() {
	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, acmeRequest(), "")

	oe := suite.requireKind(err, apperrors.KindAuthenticationRequired)
	suite.Equal("You must be signed in to perform this action", oe.Message)
}

// TestDuplicateOwner tests that an existing tenant for the principal stops the flow
func (suite *OnboardingServiceTestSuite) TestDuplicateOwner() {
	suite.mockRepo.EXPECT().GetByOwnerPrincipalID(gomock.Any(), "user_1").
		Return(&models.Organization{Slug: "older"}, nil)

	req := acmeRequest()
	req.Logo = pngLogo()
	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	oe := suite.requireKind(err, apperrors.KindDuplicateOwner)
	suite.Equal("Organization already exists for this user", oe.Message)
}

// TestSlugTakenIsStable tests that repeating a request for a taken slug fails the same way
func (suite *OnboardingServiceTestSuite) TestSlugTakenIsStable() {
	suite.mockRepo.EXPECT().GetByOwnerPrincipalID(gomock.Any(), "user_1").Return(nil, gorm.ErrRecordNotFound).Times(2)
	suite.mockRepo.EXPECT().GetBySlug(gomock.Any(), "acme").Return(&models.Organization{OwnerPrincipalID: "user_other"}, nil).Times(2)

	for i := 0; i < 2; i++ {
		resp, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, acmeRequest(), "user_1")
		suite.Nil(resp)
		oe := suite.requireKind(err, apperrors.KindSlugTaken)
		suite.Equal("This portal URL is already taken. Please choose another.", oe.Message)
	}
}

// TestPrecheckLookupErrorIsInternal tests that registry failures other than not-found are not swallowed
func (suite *OnboardingServiceTestSuite) TestPrecheckLookupErrorIsInternal() {
	suite.mockRepo.EXPECT().GetByOwnerPrincipalID(gomock.Any(), "user_1").Return(nil, errors.New("connection refused"))

	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, acmeRequest(), "user_1")

	oe := suite.requireKind(err, apperrors.KindInternalError)
	suite.Equal("An unexpected error occurred. Please try again", oe.Message)
	suite.Contains(err.Error(), "connection refused")
}

// TestLogoUploadedAndLinked tests that the stored logo URL ends up on the tenant
func (suite *OnboardingServiceTestSuite) TestLogoUploadedAndLinked() {
	var created *models.Organization
	ref := storage.AssetRef{Key: "organization-logos/user_1/abc.png", URL: "http://cdn/portals/organization-logos/user_1/abc.png"}

	suite.expectNoConflicts("user_1", "acme")
	suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), "organization-logos", "user_1").
		DoAndReturn(func(ctx context.Context, asset storage.Asset, folder, ownerID string) (storage.AssetRef, error) {
			suite.Equal("image/png", asset.ContentType)
			suite.Equal("logo.png", asset.Filename)
			return ref, nil
		})
	suite.expectCreate(&created)
	suite.mockDirectory.EXPECT().SetMetadata(gomock.Any(), "user_1", gomock.Any()).Return(nil)

	req := acmeRequest()
	req.Logo = pngLogo()
	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	suite.Require().NoError(err)
	suite.Require().NotNil(created.LogoURL)
	suite.Equal(ref.URL, *created.LogoURL)
}

// TestUploadFailed tests that an upload failure needs no compensation
func (suite *OnboardingServiceTestSuite) TestUploadFailed() {
	suite.expectNoConflicts("user_1", "acme")
	suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), "organization-logos", "user_1").
		Return(storage.AssetRef{}, errors.New("bucket quota exceeded"))

	req := acmeRequest()
	req.Logo = pngLogo()
	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	oe := suite.requireKind(err, apperrors.KindUploadFailed)
	suite.Equal("Logo upload failed", oe.Message)
	suite.Equal("bucket quota exceeded", oe.Details)
}

// TestUploadWithoutStore tests a logo submitted when no asset store is configured
func (suite *OnboardingServiceTestSuite) TestUploadWithoutStore() {
	svc := service.NewOnboardingService(suite.mockRepo, nil, suite.mockDirectory, nil, suite.validator, service.OnboardingOptions{})
	suite.expectNoConflicts("user_1", "acme")

	req := acmeRequest()
	req.Logo = pngLogo()
	_, err := svc.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	oe := suite.requireKind(err, apperrors.KindUploadFailed)
	suite.ErrorIs(oe, apperrors.ErrStorageNotConfigured)
}

// TestInsertFailureDeletesExactlyTheUploadedLogo tests compensation after a failed insert
func (suite *OnboardingServiceTestSuite) TestInsertFailureDeletesExactlyTheUploadedLogo() {
	ref := storage.AssetRef{Key: "organization-logos/user_1/abc.png", URL: "http://cdn/abc.png"}

	suite.expectNoConflicts("user_1", "acme")
	gomock.InOrder(
		suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), "organization-logos", "user_1").Return(ref, nil),
		suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")),
		suite.mockAssets.EXPECT().Delete(gomock.Any(), []storage.AssetRef{ref}).Return(nil),
	)

	req := acmeRequest()
	req.Logo = pngLogo()
	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	oe := suite.requireKind(err, apperrors.KindPersistenceFailed)
	suite.Equal("Failed to create organization in database", oe.Message)
}

// TestInsertFailureWithoutLogo tests that no deletion is attempted when nothing was uploaded
func (suite *OnboardingServiceTestSuite) TestInsertFailureWithoutLogo() {
	suite.expectNoConflicts("user_1", "acme")
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, acmeRequest(), "user_1")

	suite.requireKind(err, apperrors.KindPersistenceFailed)
}

// TestRaceLoserCompensates tests the loser of a concurrent insert, which passed the pre-checks
func (suite *OnboardingServiceTestSuite) TestRaceLoserCompensates() {
	ref := storage.AssetRef{Key: "organization-logos/user_1/abc.png"}
	uniqueViolation := fmt.Errorf("%w: duplicate key value violates unique constraint", apperrors.ErrOrganizationExists)

	suite.expectNoConflicts("user_1", "acme")
	suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ref, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uniqueViolation)
	suite.mockAssets.EXPECT().Delete(gomock.Any(), []storage.AssetRef{ref}).Return(nil)

	req := acmeRequest()
	req.Logo = pngLogo()
	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	suite.requireKind(err, apperrors.KindPersistenceFailed)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestCompensationFailureIsNotEscalated tests that a failing delete does not change the outcome
func (suite *OnboardingServiceTestSuite) TestCompensationFailureIsNotEscalated() {
	ref := storage.AssetRef{Key: "organization-logos/user_1/abc.png"}

	suite.expectNoConflicts("user_1", "acme")
	suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ref, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	suite.mockAssets.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("delete failed"))

	req := acmeRequest()
	req.Logo = pngLogo()
	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	oe := suite.requireKind(err, apperrors.KindPersistenceFailed)
	suite.NotContains(oe.Error(), "delete failed")
}

// TestCancelledRequestStillCompensates tests that cleanup runs on a context detached from cancellation
func (suite *OnboardingServiceTestSuite) TestCancelledRequestStillCompensates() {
	ref := storage.AssetRef{Key: "organization-logos/user_1/abc.png"}
	ctx, cancel := context.WithCancel(suite.ctx)

	suite.expectNoConflicts("user_1", "acme")
	suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ref, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, org *models.Organization) error {
			cancel()
			return ctx.Err()
		})
	suite.mockAssets.EXPECT().Delete(gomock.Any(), []storage.AssetRef{ref}).
		DoAndReturn(func(ctx context.Context, refs []storage.AssetRef) error {
			suite.NoError(ctx.Err())
			_, hasDeadline := ctx.Deadline()
			suite.True(hasDeadline)
			return nil
		})

	req := acmeRequest()
	req.Logo = pngLogo()
	_, err := suite.service.CompleteOrganizationOnboarding(ctx, req, "user_1")

	oe := suite.requireKind(err, apperrors.KindPersistenceFailed)
	suite.ErrorIs(oe, context.Canceled)
}

// TestPanicIsRecoveredAndCompensated tests the catch-all path
func (suite *OnboardingServiceTestSuite) TestPanicIsRecoveredAndCompensated() {
	ref := storage.AssetRef{Key: "organization-logos/user_1/abc.png"}

	suite.expectNoConflicts("user_1", "acme")
	suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ref, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, org *models.Organization) error {
			panic("driver bug")
		})
	suite.mockAssets.EXPECT().Delete(gomock.Any(), []storage.AssetRef{ref}).Return(nil)

	req := acmeRequest()
	req.Logo = pngLogo()
	resp, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	suite.Nil(resp)
	oe := suite.requireKind(err, apperrors.KindInternalError)
	suite.Contains(oe.Error(), "driver bug")
}

// TestIdentityFailureAcceptsDrift tests the default policy: the tenant stays, a repair is queued
func (suite *OnboardingServiceTestSuite) TestIdentityFailureAcceptsDrift() {
	var created *models.Organization
	ref := storage.AssetRef{Key: "organization-logos/user_1/abc.png", URL: "http://cdn/abc.png"}

	suite.expectNoConflicts("user_1", "acme")
	suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ref, nil)
	suite.expectCreate(&created)
	suite.mockDirectory.EXPECT().SetMetadata(gomock.Any(), "user_1", gomock.Any()).Return(errors.New("identity provider timeout"))
	suite.mockRepairs.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, repair identity.Repair) error {
			suite.Equal("user_1", repair.PrincipalID)
			suite.Equal(models.RoleOrganizationOwner, repair.Metadata.Role)
			suite.True(repair.Metadata.OnboardingComplete)
			suite.Equal(created.ID.String(), *repair.Metadata.OrganizationID)
			suite.Contains(repair.Reason, "identity provider timeout")
			suite.Equal(suite.now, repair.EnqueuedAt)
			return nil
		})

	req := acmeRequest()
	req.Logo = pngLogo()
	resp, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	suite.Require().NoError(err)
	suite.Equal(created.ID, resp.OrganizationID)
	suite.Equal("acme", resp.Slug)
	suite.False(resp.IdentitySynced)
}

// TestIdentityFailureWithoutRepairQueue tests that drift is accepted even when nothing can queue it
func (suite *OnboardingServiceTestSuite) TestIdentityFailureWithoutRepairQueue() {
	var created *models.Organization
	svc := service.NewOnboardingService(suite.mockRepo, suite.mockAssets, suite.mockDirectory, nil, suite.validator, service.OnboardingOptions{})

	suite.expectNoConflicts("user_1", "acme")
	suite.expectCreate(&created)
	suite.mockDirectory.EXPECT().SetMetadata(gomock.Any(), "user_1", gomock.Any()).Return(errors.New("down"))

	resp, err := svc.CompleteOrganizationOnboarding(suite.ctx, acmeRequest(), "user_1")

	suite.Require().NoError(err)
	suite.Equal(created.ID, resp.OrganizationID)
}

// TestIdentityFailureRepairEnqueueFails tests that a queue failure is only logged
func (suite *OnboardingServiceTestSuite) TestIdentityFailureRepairEnqueueFails() {
	var created *models.Organization
	suite.expectNoConflicts("user_1", "acme")
	suite.expectCreate(&created)
	suite.mockDirectory.EXPECT().SetMetadata(gomock.Any(), "user_1", gomock.Any()).Return(errors.New("down"))
	suite.mockRepairs.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	resp, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, acmeRequest(), "user_1")

	suite.Require().NoError(err)
	suite.False(resp.IdentitySynced)
}

// TestIdentityFailureRollbackPolicy tests the strict policy: tenant then logo are removed
func (suite *OnboardingServiceTestSuite) TestIdentityFailureRollbackPolicy() {
	var created *models.Organization
	svc := suite.newService(config.IdentityFailureRollback)
	ref := storage.AssetRef{Key: "organization-logos/user_1/abc.png"}

	suite.expectNoConflicts("user_1", "acme")
	suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ref, nil)
	createCall := suite.expectCreate(&created)
	suite.mockDirectory.EXPECT().SetMetadata(gomock.Any(), "user_1", gomock.Any()).Return(errors.New("identity provider timeout"))
	gomock.InOrder(
		createCall,
		suite.mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uuid.UUID) error {
				suite.Equal(created.ID, id)
				return nil
			}),
		suite.mockAssets.EXPECT().Delete(gomock.Any(), []storage.AssetRef{ref}).Return(nil),
	)

	req := acmeRequest()
	req.Logo = pngLogo()
	resp, err := svc.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	suite.Nil(resp)
	suite.requireKind(err, apperrors.KindPersistenceFailed)
}

// TestRollbackKeepsLogoWhenTenantDeleteFails tests that a tenant which could not be removed keeps its logo
func (suite *OnboardingServiceTestSuite) TestRollbackKeepsLogoWhenTenantDeleteFails() {
	var created *models.Organization
	svc := suite.newService(config.IdentityFailureRollback)
	ref := storage.AssetRef{Key: "organization-logos/user_1/abc.gif", URL: "http://cdn/organization-logos/user_1/abc.gif"}

	suite.expectNoConflicts("user_1", "acme")
	suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ref, nil)
	suite.expectCreate(&created)
	suite.mockDirectory.EXPECT().SetMetadata(gomock.Any(), "user_1", gomock.Any()).Return(errors.New("identity provider timeout"))
	suite.mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	suite.mockAssets.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	req := acmeRequest()
	req.Logo = pngLogo()
	resp, err := svc.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")

	suite.Nil(resp)
	suite.requireKind(err, apperrors.KindPersistenceFailed)
	suite.Require().NotNil(created.LogoURL)
	suite.Equal(ref.URL, *created.LogoURL)
}

// TestIdentityPanicAcceptsDrift tests that a panicking directory is handled like any identity failure
func (suite *OnboardingServiceTestSuite) TestIdentityPanicAcceptsDrift() {
	var created *models.Organization
	suite.expectNoConflicts("user_1", "acme")
	suite.expectCreate(&created)
	suite.mockDirectory.EXPECT().SetMetadata(gomock.Any(), "user_1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, principalID string, metadata identity.Metadata) error {
			panic("nil client")
		})
	suite.mockRepairs.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, repair identity.Repair) error {
			suite.Contains(repair.Reason, "nil client")
			return nil
		})
	suite.mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	resp, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, acmeRequest(), "user_1")

	suite.Require().NoError(err)
	suite.Equal(created.ID, resp.OrganizationID)
	suite.False(resp.IdentitySynced)
}

// TestIdentityPanicRollbackPolicy tests that a panicking directory rolls back under the strict policy
func (suite *OnboardingServiceTestSuite) TestIdentityPanicRollbackPolicy() {
	var created *models.Organization
	svc := suite.newService(config.IdentityFailureRollback)

	suite.expectNoConflicts("user_1", "acme")
	suite.expectCreate(&created)
	suite.mockDirectory.EXPECT().SetMetadata(gomock.Any(), "user_1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, principalID string, metadata identity.Metadata) error {
			panic("nil client")
		})
	suite.mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) error {
			suite.Equal(created.ID, id)
			return nil
		})

	resp, err := svc.CompleteOrganizationOnboarding(suite.ctx, acmeRequest(), "user_1")

	suite.Nil(resp)
	oe := suite.requireKind(err, apperrors.KindPersistenceFailed)
	suite.Contains(oe.Error(), "nil client")
}

// TestRetryAfterUploadFailure tests that a failed attempt before insert leaves nothing behind to block a retry
func (suite *OnboardingServiceTestSuite) TestRetryAfterUploadFailure() {
	var created *models.Organization
	ref := storage.AssetRef{Key: "organization-logos/user_1/abc.png", URL: "http://cdn/abc.png"}

	suite.mockRepo.EXPECT().GetByOwnerPrincipalID(gomock.Any(), "user_1").Return(nil, gorm.ErrRecordNotFound).Times(2)
	suite.mockRepo.EXPECT().GetBySlug(gomock.Any(), "acme").Return(nil, gorm.ErrRecordNotFound).Times(2)
	gomock.InOrder(
		suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.AssetRef{}, errors.New("flaky")),
		suite.mockAssets.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ref, nil),
	)
	suite.expectCreate(&created)
	suite.mockDirectory.EXPECT().SetMetadata(gomock.Any(), "user_1", gomock.Any()).Return(nil)

	req := acmeRequest()
	req.Logo = pngLogo()
	_, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")
	suite.requireKind(err, apperrors.KindUploadFailed)

	resp, err := suite.service.CompleteOrganizationOnboarding(suite.ctx, req, "user_1")
	suite.Require().NoError(err)
	suite.Equal("acme", resp.Slug)
}

// TestOnboardingServiceTestSuite runs the test suite
func TestOnboardingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingServiceTestSuite))
}
