package components

import (
	"visit-booking/internal/handler"
	"visit-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
