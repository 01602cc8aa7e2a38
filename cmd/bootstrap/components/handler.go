package components

import (
	"range-booking/internal/handler"
	"range-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAuditHandler,
		api.NewResourceHandler,
		func(b *api.BookingHandler, a *api.AuditHandler, r *api.ResourceHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Audit: a, Resource: r}
		},
	),
	fx.Invoke(handler.NewRouter),
)
