package components

import (
	"log/slog"

	"booking-wizard/internal/infra/sessions"
	"booking-wizard/internal/infra/upstream"
	"booking-wizard/internal/pkg/config"
	"booking-wizard/internal/usecase/commands"
	"booking-wizard/internal/usecase/queries"

	"go.uber.org/fx"
)

// GatewayModule wires the outbound edges: the upstream booking backend
// and the in-memory session store.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewUpstreamClient,
		fx.Annotate(
			func(c *upstream.Client) *upstream.Client { return c },
			fx.As(new(queries.AvailabilityGateway)),
		),
		fx.Annotate(
			func(c *upstream.Client) *upstream.Client { return c },
			fx.As(new(commands.BookingGateway)),
		),
		fx.Annotate(
			func(s *sessions.Store) *sessions.Store { return s },
			fx.As(new(commands.SessionStore)),
		),
		fx.Annotate(
			func(s *sessions.Store) *sessions.Store { return s },
			fx.As(new(queries.SessionStore)),
		),
	),
)

func NewUpstreamClient(cfg config.Config, logger *slog.Logger) *upstream.Client {
	return upstream.NewClient(cfg.Upstream, logger)
}
