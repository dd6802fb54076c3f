// Package cli defines the cobra command tree for welboard.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"welboard/internal/cache"
	"welboard/internal/config"
	"welboard/internal/engage"
	"welboard/internal/logging"
	"welboard/internal/lunch"
	"welboard/internal/welstory"
)

var flagFormat string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "welboard",
		Short:         "Cafeteria lunch menu and engagement board",
		Long:          "View the day's Welstory cafeteria menu with crowd ratings, vote and comment on dishes, and post to the lunch board.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	root.AddCommand(
		newMenuCmd(),
		newLikeCmd(),
		newDislikeCmd(),
		newCommentCmd(),
		newCommentsCmd(),
		newBoardCmd(),
		newPostCmd(),
		newReplyCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// app bundles the wired components a command needs.
type app struct {
	cfg   config.Config
	svc   *lunch.Service
	store *engage.Store
	cache *cache.Cache
}

// newApp loads configuration, opens local storage, and logs in to the
// meal service when credentials are configured. A failed login leaves the
// app in the unauthenticated state rather than aborting: engagement
// commands still work offline.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFileConfig(&cfg)
	logging.Setup(cfg.Dev)

	store, err := engage.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening engagement store: %w", err)
	}

	menuCache, err := cache.Open(cfg.CachePath)
	if err != nil {
		slog.Warn("menu cache unavailable", "error", err)
		menuCache = nil
	}

	client := welstory.New(cfg.BaseURL, cfg.RestaurantCode)
	if cfg.Username != "" && cfg.Password != "" {
		if err := client.Login(ctx, cfg.Username, cfg.Password); err != nil {
			slog.Warn("welstory login failed, continuing unauthenticated", "error", err)
		}
	}

	return &app{
		cfg:   cfg,
		svc:   lunch.NewService(client, store, menuCache),
		store: store,
		cache: menuCache,
	}, nil
}

// close releases the app's resources.
func (a *app) close() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing menu cache: %v\n", err)
	}
}
