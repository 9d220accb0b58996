package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"booking-wizard/internal/infra/sessions"
	"booking-wizard/internal/pkg/clock"
	"booking-wizard/internal/pkg/config"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("sessions",
	fx.Provide(
		NewSessionStore,
	),
	fx.Invoke(StartSessionSweeper),
)

func NewSessionStore(cfg config.Config, clk clock.Clock, logger *slog.Logger) *sessions.Store {
	return sessions.NewStore(clk, cfg.Session.TTL, logger)
}

// StartSessionSweeper evicts expired drafts in the background. Without it
// abandoned wizard sessions would only be reclaimed when someone happens
// to look them up.
func StartSessionSweeper(lc fx.Lifecycle, store *sessions.Store, cfg config.Config) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ticker := time.NewTicker(cfg.Session.SweepInterval)
			go func() {
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						store.RemoveExpired()
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(done)
			return nil
		},
	})
}
