package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/revell/cuetime/internal/config"
	"github.com/revell/cuetime/internal/control"
	"github.com/revell/cuetime/internal/ontime"
	"github.com/revell/cuetime/internal/prefs"
	"github.com/revell/cuetime/internal/state"
	"github.com/revell/cuetime/internal/ui"
)

// Options configure the cuetime application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cuetime/prefs.toml
	ServerURL  string // overrides the configured server URL
	TickEvery  time.Duration
}

// Run boots the overlay until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}
	if opts.TickEvery > 0 {
		cfg.TickEvery = opts.TickEvery
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	logger := newLogger()

	conn, err := ontime.NewConn(cfg.ServerURL, logger)
	if err != nil {
		return fmt.Errorf("init connection: %w", err)
	}

	store := state.NewStore(clockwork.NewRealClock())
	dispatcher := control.NewDispatcher(conn, store, cfg.AddtimeAffectsDuration, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go conn.Run(ctx)
	StartPump(ctx, store, conn.Updates())

	logger.Info().Str("server", cfg.ServerURL).Msg("starting")

	return ui.Run(ui.Options{
		Context:    ctx,
		Store:      store,
		Dispatcher: dispatcher,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
		TickEvery:  cfg.TickEvery,
	})
}

// StartPump launches the goroutine that applies normalized updates to the
// store. It returns immediately.
func StartPump(ctx context.Context, store *state.Store, updates <-chan ontime.Update) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case u := <-updates:
				store.Apply(u)
			}
		}
	}()
}
