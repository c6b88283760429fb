package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"service-desk/internal/handler/api"
	"service-desk/internal/handler/middleware"
	"service-desk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Chat      *api.ChatHandler
	Assist    *api.AssistHandler
	Inventory *api.InventoryHandler
	Tickets   *api.TicketHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/health", Handler: h.Chat.Health},
		{Method: http.MethodPost, Path: "/chat", Handler: h.Chat.Chat},
	})

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/intake", Handler: h.Assist.Intake},
			{Method: http.MethodPost, Path: "/troubleshoot", Handler: h.Assist.Troubleshoot},
		})

		inventory := apiGroup.Group("/inventory")
		{
			addRoutes(inventory, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Inventory.List},
				{Method: http.MethodPost, Path: "", Handler: h.Inventory.Create},
				{Method: http.MethodGet, Path: "/lookup", Handler: h.Inventory.Lookup},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Inventory.Summary},
				{Method: http.MethodGet, Path: "/:serial", Handler: h.Inventory.Get},
				{Method: http.MethodPatch, Path: "/:serial", Handler: h.Inventory.Update},
				{Method: http.MethodDelete, Path: "/:serial", Handler: h.Inventory.Delete},
				{Method: http.MethodPost, Path: "/:serial/allocate", Handler: h.Inventory.Allocate},
				{Method: http.MethodPost, Path: "/:serial/release", Handler: h.Inventory.Release},
			})
		}

		tickets := apiGroup.Group("/tickets")
		{
			addRoutes(tickets, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Tickets.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Tickets.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Tickets.Get},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
