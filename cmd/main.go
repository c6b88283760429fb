package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"service-desk/cmd/bootstrap"
	"service-desk/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

var rootCmd = &cobra.Command{
	Use:   "service-desk",
	Short: "AI service desk: repair intake, inventory lookup and ticket status",
	Long: `service-desk answers customer messages by routing them to the inventory
and ticket stores, either through a local keyword router or a hosted model.

Run "service-desk serve" for the HTTP API or "service-desk chat" for a terminal session.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runServer()
	},
}

// @title           service-desk
// @version         1.0
// @description     Chat, repair intake, inventory and ticket endpoints.

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode(), "agent_mode", cfg.Agent.Mode)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}

func runServer() error {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped")
	return nil
}

// withCLI builds the store and use case graph and fills targets, the way
// fx.Populate does.
func withCLI(targets ...any) error {
	app := fx.New(
		bootstrap.CLIModule,
		fx.NopLogger,
		fx.Populate(targets...),
	)
	return app.Err()
}

func main() {
	rootCmd.AddCommand(serveCmd, chatCmd, inventoryCmd, ticketsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
