package identity

//go:generate mockgen -source=identity.go -destination=../mocks/identity_mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jrmeyers92/client-portals/internal/config"
	"github.com/jrmeyers92/client-portals/internal/database/models"
)

// Metadata is the public metadata the portal keeps on a principal
type Metadata struct {
	Role               models.Role `json:"role"`
	OnboardingComplete bool        `json:"onboardingComplete"`
	OrganizationID     *string     `json:"organizationId,omitempty"`
}

// Directory writes principal metadata to the identity provider
type Directory interface {
	SetMetadata(ctx context.Context, principalID string, metadata Metadata) error
}

// Repair is a metadata write that failed and must be replayed later
type Repair struct {
	PrincipalID string    `json:"principalId"`
	Metadata    Metadata  `json:"metadata"`
	Reason      string    `json:"reason"`
	EnqueuedAt  time.Time `json:"enqueuedAt"`
}

// RepairQueue records metadata drift for out-of-band repair
type RepairQueue interface {
	Enqueue(ctx context.Context, repair Repair) error
}

// NewDirectory builds the Directory selected by IDENTITY_PROVIDER
func NewDirectory(cfg *config.Config) (Directory, error) {
	switch cfg.IdentityProvider {
	case config.IdentityProviderHTTP, "":
		return NewHTTPDirectory(cfg), nil
	case config.IdentityProviderLDAP:
		return NewLDAPDirectory(cfg), nil
	default:
		return nil, fmt.Errorf("unknown identity provider %q", cfg.IdentityProvider)
	}
}
