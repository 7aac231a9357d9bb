package root

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"habithatch/internal/config"
	"habithatch/internal/flavor"
	"habithatch/internal/game"
	"habithatch/internal/storage"
	"habithatch/internal/ui"
)

func loadConfig() (config.Config, error) {
	path := os.Getenv("HATCH_CONFIG")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".habithatch.yaml")
		}
	}
	return config.Load(path)
}

func openSaves(ctx context.Context) (*storage.SaveRepo, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return storage.NewSaveRepo(db), cleanup, nil
}

// openGame loads the logged-in user's game and immediately evaluates the
// daily rollover, printing the pet's greeting when the day changed.
func openGame(ctx context.Context, cmd *cobra.Command) (*game.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	saves, cleanup, err := openSaves(ctx)
	if err != nil {
		return nil, nil, err
	}

	username, err := saves.CurrentUser(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if username == "" {
		cleanup()
		return nil, nil, game.ErrNotLoggedIn
	}

	opts := []game.Option{}
	if cfg.Flavor.APIKey != "" {
		opts = append(opts, game.WithFlavor(flavor.NewGeminiClient(flavor.GeminiConfig{
			Model:   cfg.Flavor.Model,
			APIKey:  cfg.Flavor.APIKey,
			BaseURL: cfg.Flavor.BaseURL,
			Timeout: cfg.Flavor.Timeout(),
		})))
	}

	svc, err := game.Load(ctx, saves, username, cfg.Balance, opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	roll, err := svc.CheckDay(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if roll.Kind != game.SameDay {
		pet := svc.Pet()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			ui.Heading(ui.IconSparkle, "New day!"),
			ui.Muted.Render(fmt.Sprintf("%s says: %q", pet.Name, roll.Greeting)))
		if roll.Kind == game.GapDay && roll.DayStreak == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Your day streak reset. Fresh start!"))
		}
	}

	return svc, cleanup, nil
}

func currentBalance() config.Balance {
	cfg, err := loadConfig()
	if err != nil {
		return config.Default()
	}
	return cfg.Balance
}
