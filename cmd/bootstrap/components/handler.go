package components

import (
	"booking-wizard/internal/handler"
	"booking-wizard/internal/handler/api"
	"booking-wizard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWizardHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
