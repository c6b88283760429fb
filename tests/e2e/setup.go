//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"service-desk/cmd/bootstrap"
	"service-desk/cmd/bootstrap/components"
	"service-desk/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Builds the full HTTP graph over a data directory
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, dataDir string) (*gin.Engine, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router, cfg, app := buildE2EApp(dataDir)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})
	return router, cfg
}

// Returns router, config, and fx.App for proper lifecycle management
func buildE2EApp(dataDir string) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(dataDir)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	return router, cfg, app
}

func createTestConfig(dataDir string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Store.DataDir = dataDir
	testConfig.Store.TicketsFile = "tickets.json"
	testConfig.Store.InventoryFile = "inventory.json"
	return testConfig
}

// ------------------------------------------------------------
// Common setup shared by the E2E suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Config  config.Config
	DataDir string
}

// SetupTest gives every test a fresh data directory and application.
func (s *SharedSuite) SetupTest() {
	s.DataDir = s.T().TempDir()
	s.Router, s.Config = setupE2EEnvironment(s.T(), s.DataDir)
	require.NotEmpty(s.T(), s.Config.Store.InventoryPath(), "config was not populated")
}

// Restart rebuilds the application over the same data directory, as a
// process restart would.
func (s *SharedSuite) Restart() {
	s.Router, s.Config = setupE2EEnvironment(s.T(), s.DataDir)
}
