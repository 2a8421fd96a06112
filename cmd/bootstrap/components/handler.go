package components

import (
	"antriqu/internal/handler"
	"antriqu/internal/handler/api"
	"antriqu/internal/handler/middleware"

	"go.uber.org/fx"
)

type handlerParams struct {
	fx.In

	Auth      *api.AuthHandler
	Ticket    *api.TicketHandler
	Queue     *api.QueueHandler
	Dashboard *api.DashboardHandler
	Admin     *api.AdminHandler
	Display   *api.DisplayHandler
}

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTicketHandler,
		api.NewQueueHandler,
		api.NewDashboardHandler,
		api.NewAdminHandler,
		api.NewDisplayHandler,
		middleware.NewAuthMiddleware,
		func(p handlerParams) handler.Handlers {
			return handler.Handlers{
				Auth:      p.Auth,
				Ticket:    p.Ticket,
				Queue:     p.Queue,
				Dashboard: p.Dashboard,
				Admin:     p.Admin,
				Display:   p.Display,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
