package components

import (
	"context"
	"log/slog"

	"service-desk/internal/infra/agent"
	"service-desk/internal/pkg/config"
	"service-desk/internal/usecase"
	"service-desk/internal/usecase/commands"
	"service-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseChatModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewInventoryCommands,
		commands.NewTicketCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewInventoryQueries,
		queries.NewTicketQueries,
	),
)

var usecaseChatModule = fx.Module("usecase/chat",
	fx.Provide(
		NewMessageRouter,
		NewAgent,
		NewChatUseCase,
		usecase.NewIntakeUseCase,
	),
)

func NewInventoryQueries(store queries.InventoryReader, cfg config.Config) queries.InventoryQueries {
	return queries.NewInventoryQueries(store, cfg.Store.LookupMaxResults)
}

func NewMessageRouter(inv usecase.InventoryLookup, tickets usecase.TicketRepository, cfg config.Config, logger *slog.Logger) usecase.MessageRouter {
	return usecase.NewRouter(usecase.RouterDeps{
		Inventory:   inv,
		Tickets:     tickets,
		LookupLimit: cfg.Store.LookupMaxResults,
		Logger:      logger,
	})
}

// NewAgent returns nil in local mode; the chat use case then routes every
// message itself.
func NewAgent(cfg config.Config, inv usecase.InventoryLookup, tickets usecase.TicketRepository, logger *slog.Logger) (usecase.Agent, error) {
	if !cfg.Agent.Remote() {
		return nil, nil
	}
	a, err := agent.NewGeminiAgent(context.Background(), cfg.Agent, inv, tickets, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("remote agent enabled", "model", cfg.Agent.Model)
	return a, nil
}

func NewChatUseCase(router usecase.MessageRouter, a usecase.Agent, cfg config.Config, logger *slog.Logger) usecase.ChatUseCase {
	return usecase.NewChatUseCase(router, a, cfg.Agent.Timeout, logger)
}
