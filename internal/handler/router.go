package handler

import (
	"log/slog"
	"net/http"

	"antriqu/internal/domain/staff"
	"antriqu/internal/handler/api"
	"antriqu/internal/handler/middleware"
	"antriqu/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Ticket    *api.TicketHandler
	Queue     *api.QueueHandler
	Dashboard *api.DashboardHandler
	Admin     *api.AdminHandler
	Display   *api.DisplayHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(staff.RoleOperator)}
	admin := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(staff.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: operator},
		})

		tickets := apiGroup.Group("/tickets")
		addRoutes(tickets, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Ticket.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Ticket.List, Mw: operator},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Ticket.Get},
			{Method: http.MethodPost, Path: "/:id/resolve", Handler: h.Ticket.Resolve, Mw: operator},
			{Method: http.MethodPost, Path: "/:id/skip", Handler: h.Ticket.Skip, Mw: operator},
			{Method: http.MethodPost, Path: "/:id/recall", Handler: h.Ticket.Recall, Mw: operator},
		})

		queue := apiGroup.Group("/queue")
		addRoutes(queue, []route{
			{Method: http.MethodGet, Path: "/waiting", Handler: h.Queue.Waiting},
			{Method: http.MethodGet, Path: "/current", Handler: h.Queue.Current},
			{Method: http.MethodGet, Path: "/estimate", Handler: h.Queue.Estimate},
		})

		counters := apiGroup.Group("/counters")
		addRoutes(counters, []route{
			{Method: http.MethodPost, Path: "/:counter/call-next", Handler: h.Queue.CallNext, Mw: operator},
		})

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(operator...)
		addRoutes(dashboard, []route{
			{Method: http.MethodGet, Path: "/stats", Handler: h.Dashboard.Stats},
			{Method: http.MethodGet, Path: "/insight", Handler: h.Dashboard.Insight},
			{Method: http.MethodGet, Path: "/overview", Handler: h.Dashboard.Overview},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/greeting", Handler: h.Dashboard.Greeting},
			{Method: http.MethodGet, Path: "/display/stream", Handler: h.Display.Stream},
			{Method: http.MethodPost, Path: "/admin/reset", Handler: h.Admin.Reset, Mw: admin},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
