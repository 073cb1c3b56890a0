package models

import (
	"time"
)

// Organization represents a tenant, the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name                string             `json:"name" gorm:"type:text;not null"`
	Slug                string             `json:"slug" gorm:"uniqueIndex;not null;size:50"`
	LogoURL             *string            `json:"logo_url,omitempty" gorm:"type:text"`
	PrimaryColor        string             `json:"primary_color" gorm:"not null;size:7"`
	SecondaryColor      string             `json:"secondary_color" gorm:"not null;size:7"`
	OwnerPrincipalID    string             `json:"owner_principal_id" gorm:"type:text;uniqueIndex;not null"`
	OwnerEmail          string             `json:"owner_email" gorm:"type:text;not null"`
	OwnerName           *string            `json:"owner_name,omitempty" gorm:"type:text"`
	EmailFromName       string             `json:"email_from_name" gorm:"type:text"`
	CustomDomain        *string            `json:"custom_domain,omitempty" gorm:"size:253"`
	StripeCustomerID    *string            `json:"stripe_customer_id,omitempty" gorm:"size:100"`
	SubscriptionTier    SubscriptionTier   `json:"subscription_tier" gorm:"not null;size:20;default:'trial'"`
	SubscriptionStatus  SubscriptionStatus `json:"subscription_status" gorm:"not null;size:20;default:'trialing'"`
	TrialEndsAt         *time.Time         `json:"trial_ends_at,omitempty"`
	StorageUsedBytes    int64              `json:"storage_used_bytes" gorm:"not null;default:0"`
	StorageLimitBytes   int64              `json:"storage_limit_bytes" gorm:"not null"`
	OnboardingCompleted bool               `json:"onboarding_completed" gorm:"not null;default:false"`
	OnboardingStep      int                `json:"onboarding_step" gorm:"not null;default:0"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
