package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jrmeyers92/client-portals/internal/config"
	"github.com/jrmeyers92/client-portals/internal/database"
	"github.com/jrmeyers92/client-portals/internal/database/models"
	"github.com/jrmeyers92/client-portals/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OrganizationData is one development tenant as written in YAML
type OrganizationData struct {
	Name               string `yaml:"name"`
	Slug               string `yaml:"slug"`
	OwnerPrincipalID   string `yaml:"owner_principal_id"`
	OwnerEmail         string `yaml:"owner_email"`
	OwnerName          string `yaml:"owner_name,omitempty"`
	PrimaryColor       string `yaml:"primary_color,omitempty"`
	SecondaryColor     string `yaml:"secondary_color,omitempty"`
	EmailFromName      string `yaml:"email_from_name,omitempty"`
	LogoURL            string `yaml:"logo_url,omitempty"`
	SubscriptionTier   string `yaml:"subscription_tier,omitempty"`
	SubscriptionStatus string `yaml:"subscription_status,omitempty"`
}

// OrganizationsFile is the layout of organizations.yaml
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	created, total, err := loadOrganizations(context.Background(), db, cfg, filepath.Join("scripts", "data", "organizations.yaml"))
	if err != nil {
		log.Fatalf("Failed to load organizations: %v", err)
	}

	log.Printf("Organizations: %d created, %d refreshed", created, total-created)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadOrganizations(ctx context.Context, db *gorm.DB, cfg *config.Config, path string) (int, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read %s: %w", path, err)
	}

	var file OrganizationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, 0, fmt.Errorf("parse %s: %w", path, err)
	}

	repo := repository.NewOrganizationRepository(db)
	created := 0
	for _, orgData := range file.Organizations {
		ok, err := upsertOrganization(ctx, repo, cfg, orgData)
		if err != nil {
			return created, len(file.Organizations), fmt.Errorf("organization %s: %w", orgData.Slug, err)
		}
		if ok {
			created++
		}
	}
	return created, len(file.Organizations), nil
}

// upsertOrganization inserts the tenant, or refreshes the branding of the tenant already
// holding its slug. It reports whether a row was created.
func upsertOrganization(ctx context.Context, repo *repository.OrganizationRepository, cfg *config.Config, orgData OrganizationData) (bool, error) {
	existing, err := repo.GetBySlug(ctx, orgData.Slug)
	if err == nil {
		existing.Name = orgData.Name
		existing.PrimaryColor = orDefault(orgData.PrimaryColor, existing.PrimaryColor)
		existing.SecondaryColor = orDefault(orgData.SecondaryColor, existing.SecondaryColor)
		existing.EmailFromName = orDefault(orgData.EmailFromName, orgData.Name)
		if orgData.LogoURL != "" {
			existing.LogoURL = &orgData.LogoURL
		}
		return false, repo.Update(ctx, existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	trialEnds := time.Now().UTC().AddDate(0, 0, cfg.TrialDays)
	org := &models.Organization{
		Name:                orgData.Name,
		Slug:                orgData.Slug,
		OwnerPrincipalID:    orgData.OwnerPrincipalID,
		OwnerEmail:          orgData.OwnerEmail,
		PrimaryColor:        orDefault(orgData.PrimaryColor, "#6366f1"),
		SecondaryColor:      orDefault(orgData.SecondaryColor, "#8b5cf6"),
		EmailFromName:       orDefault(orgData.EmailFromName, orgData.Name),
		SubscriptionTier:    models.SubscriptionTier(orDefault(orgData.SubscriptionTier, string(models.SubscriptionTierTrial))),
		SubscriptionStatus:  models.SubscriptionStatus(orDefault(orgData.SubscriptionStatus, string(models.SubscriptionStatusTrialing))),
		TrialEndsAt:         &trialEnds,
		StorageLimitBytes:   cfg.StorageLimitBytes,
		OnboardingCompleted: true,
		OnboardingStep:      1,
	}
	if orgData.OwnerName != "" {
		org.OwnerName = &orgData.OwnerName
	}
	if orgData.LogoURL != "" {
		org.LogoURL = &orgData.LogoURL
	}
	if !org.SubscriptionTier.IsValid() || !org.SubscriptionStatus.IsValid() {
		return false, fmt.Errorf("invalid subscription %q/%q", org.SubscriptionTier, org.SubscriptionStatus)
	}

	if err := repo.Create(ctx, org); err != nil {
		return false, err
	}
	return true, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
