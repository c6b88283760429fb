package components

import (
	"log/slog"

	"service-desk/internal/infra/store"
	"service-desk/internal/pkg/clock"
	"service-desk/internal/pkg/config"
	"service-desk/internal/usecase"
	"service-desk/internal/usecase/commands"
	"service-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			NewInventoryStore,
			fx.As(new(usecase.InventoryLookup)),
			fx.As(new(commands.InventoryWriter)),
			fx.As(new(queries.InventoryReader)),
		),
		fx.Annotate(
			NewTicketStore,
			fx.As(new(usecase.TicketRepository)),
			fx.As(new(commands.TicketWriter)),
			fx.As(new(queries.TicketReader)),
		),
	),
)

func NewInventoryStore(cfg config.Config, clk clock.Clock, logger *slog.Logger) *store.InventoryStore {
	return store.NewInventoryStore(cfg.Store.InventoryPath(), cfg.Store.InventoryAutosave, clk, logger)
}

func NewTicketStore(cfg config.Config, clk clock.Clock, logger *slog.Logger) *store.TicketStore {
	return store.NewTicketStore(cfg.Store.TicketsPath(), clk, logger)
}
