package bootstrap

import (
	"booking-wizard/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	SessionModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
