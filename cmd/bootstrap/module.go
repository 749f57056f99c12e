package bootstrap

import (
	"visit-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	EventsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
