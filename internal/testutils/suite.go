package testutils

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/jrmeyers92/client-portals/internal/config"
	"github.com/jrmeyers92/client-portals/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "portals"
	pgPassword = "portals"
	pgDatabase = "portals_test"
)

// tenantTables are truncated between tests
var tenantTables = []string{"organizations"}

// postgresContainer is the Postgres instance shared by every integration suite of a test binary
var postgresContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
}

// BaseTestSuite gives integration suites a migrated database and a matching config
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	postgresContainer.once.Do(func() { postgresContainer.err = startPostgres() })
	if postgresContainer.err != nil {
		t.Fatalf("failed to start postgres container: %v", postgresContainer.err)
	}
	return &BaseTestSuite{DB: postgresContainer.db, Config: postgresContainer.config}
}

// RunIntegrationMain runs the package tests and purges the container afterwards,
// including when the run is interrupted
func RunIntegrationMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		logrus.Warn("integration tests interrupted, purging postgres container")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

// CleanupSharedContainer closes the pool and purges the container
func CleanupSharedContainer() {
	if postgresContainer.db != nil {
		if sqlDB, err := postgresContainer.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		postgresContainer.db = nil
	}
	if postgresContainer.pool == nil || postgresContainer.resource == nil {
		return
	}
	if err := postgresContainer.pool.Purge(postgresContainer.resource); err != nil {
		logrus.WithError(err).Warn("could not purge postgres container")
	}
	postgresContainer.resource = nil
	postgresContainer.pool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite leaves the container running for the next suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates the tenant tables
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, table := range tenantTables {
		if m.HasTable(table) {
			s.DB.Exec(`TRUNCATE TABLE "` + table + `" CASCADE`)
		}
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	postgresContainer.pool = pool
	postgresContainer.resource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	err = pool.Retry(func() error {
		probe, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer probe.Close()
		if err := probe.Ping(); err != nil {
			return err
		}

		db, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		postgresContainer.db = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	postgresContainer.config = &config.Config{
		Environment:           "test",
		DatabaseURL:           dsn,
		StorageBucket:         "portals-test",
		LogoFolder:            "organization-logos",
		TrialDays:             14,
		StorageLimitBytes:     10737418240,
		MaxLogoBytes:          5 * 1024 * 1024,
		IdentityFailurePolicy: config.IdentityFailureAcceptDrift,
		CleanupTimeoutSec:     30,
	}

	logrus.WithField("port", port).Info("postgres test container ready")
	return nil
}
