package models

// SubscriptionTier defines the billing tiers of an organization
type SubscriptionTier string

const (
	SubscriptionTierTrial        SubscriptionTier = "trial"
	SubscriptionTierStarter      SubscriptionTier = "starter"
	SubscriptionTierProfessional SubscriptionTier = "professional"
	SubscriptionTierAgency       SubscriptionTier = "agency"
)

// SubscriptionStatus defines the lifecycle states of a subscription
type SubscriptionStatus string

const (
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPaused   SubscriptionStatus = "paused"
)

// Role defines the coarse role stored in a principal's identity metadata
type Role string

const (
	RoleUser              Role = "user"
	RoleOrganizationOwner Role = "organizationOwner"
)

// IsValid checks if the SubscriptionTier is valid
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case SubscriptionTierTrial, SubscriptionTierStarter, SubscriptionTierProfessional, SubscriptionTierAgency:
		return true
	}
	return false
}

// IsValid checks if the SubscriptionStatus is valid
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusTrialing, SubscriptionStatusActive, SubscriptionStatusPastDue, SubscriptionStatusCanceled, SubscriptionStatusPaused:
		return true
	}
	return false
}

// IsValid checks if the Role is one a principal may select for itself
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOrganizationOwner:
		return true
	}
	return false
}
