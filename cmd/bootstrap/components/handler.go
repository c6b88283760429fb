package components

import (
	"log/slog"

	"service-desk/internal/handler"
	"service-desk/internal/handler/api"
	"service-desk/internal/pkg/config"
	"service-desk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewChatHandler,
		api.NewAssistHandler,
		api.NewInventoryHandler,
		api.NewTicketHandler,
	),
	fx.Invoke(RegisterRoutes),
)

func NewChatHandler(chat usecase.ChatUseCase, cfg config.Config) *api.ChatHandler {
	return api.NewChatHandler(chat, cfg.Agent.Mode)
}

func RegisterRoutes(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	chat *api.ChatHandler,
	assist *api.AssistHandler,
	inventory *api.InventoryHandler,
	tickets *api.TicketHandler,
) {
	handler.NewRouter(engine, cfg, logger, handler.Handlers{
		Chat:      chat,
		Assist:    assist,
		Inventory: inventory,
		Tickets:   tickets,
	})
}
