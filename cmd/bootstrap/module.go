package bootstrap

import (
	"service-desk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the HTTP server graph.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// CLIModule is the graph behind the terminal commands: stores and use cases,
// no HTTP layer.
var CLIModule = fx.Options(
	ConfigModule,
	CLILoggerModule,
	components.PersistenceModule,
	components.UseCaseModule,
)
