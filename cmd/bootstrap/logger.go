package bootstrap

import (
	"log/slog"

	"service-desk/internal/handler/middleware"
	"service-desk/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// CLILoggerModule logs to stderr so command output on stdout stays clean.
var CLILoggerModule = fx.Module("logger/cli",
	fx.Provide(
		NewCLILogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}

func NewCLILogger(cfg config.Config) *slog.Logger {
	return middleware.NewStderrLogger(cfg.Log).GetSlogLogger()
}
