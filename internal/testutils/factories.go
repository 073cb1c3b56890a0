package testutils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"time"

	"github.com/jrmeyers92/client-portals/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization the way a finished onboarding leaves it
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	trialEnds := time.Now().AddDate(0, 0, 14)
	short := id.String()[:8]

	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                "Test Organization",
		Slug:                "test-org-" + short,
		PrimaryColor:        "#6366f1",
		SecondaryColor:      "#8b5cf6",
		OwnerPrincipalID:    "user_" + short,
		OwnerEmail:          "owner-" + short + "@test.com",
		EmailFromName:       "Test Organization",
		SubscriptionTier:    models.SubscriptionTierTrial,
		SubscriptionStatus:  models.SubscriptionStatusTrialing,
		TrialEndsAt:         &trialEnds,
		StorageLimitBytes:   10737418240,
		OnboardingCompleted: true,
		OnboardingStep:      1,
	}
}

// WithSlug sets a custom slug for the organization
func (f *OrganizationFactory) WithSlug(slug string) *models.Organization {
	org := f.Create()
	org.Slug = slug
	return org
}

// WithOwner sets a custom owner principal for the organization
func (f *OrganizationFactory) WithOwner(principalID string) *models.Organization {
	org := f.Create()
	org.OwnerPrincipalID = principalID
	return org
}

// WithLogo sets a logo URL for the organization
func (f *OrganizationFactory) WithLogo(url string) *models.Organization {
	org := f.Create()
	org.LogoURL = &url
	return org
}

// LogoFactory produces small but real image payloads for upload tests
type LogoFactory struct{}

// NewLogoFactory creates a new LogoFactory
func NewLogoFactory() *LogoFactory {
	return &LogoFactory{}
}

// PNG returns an encoded square PNG with the given edge length
func (f *LogoFactory) PNG(edge int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, edge, edge))
	for x := 0; x < edge; x++ {
		for y := 0; y < edge; y++ {
			img.Set(x, y, color.RGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff})
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// Oversized returns a payload of n bytes, useful for size-limit checks
func (f *LogoFactory) Oversized(n int64) []byte {
	return bytes.Repeat([]byte{0x89}, int(n))
}

// FactorySet provides easy access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Logo         *LogoFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Logo:         NewLogoFactory(),
	}
}
