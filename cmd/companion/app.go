package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
	"github.com/osse101/ValleyCompanion_Go/internal/config"
	"github.com/osse101/ValleyCompanion_Go/internal/favorites"
	"github.com/osse101/ValleyCompanion_Go/internal/logger"
	"github.com/osse101/ValleyCompanion_Go/internal/planner"
	"github.com/osse101/ValleyCompanion_Go/internal/storage"
)

// app carries what every command needs. Tests fill api and kv directly;
// otherwise they are built from configuration on first use.
type app struct {
	out io.Writer

	apiURL  string
	output  string
	timeout time.Duration
	state   string
	verbose bool

	cfg     *config.Config
	api     *client.APIClient
	kv      storage.KV
	closeKV func() error
}

func newApp(out io.Writer) *app {
	return &app{out: out}
}

// setup loads configuration and installs a quiet logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	lc := logger.DefaultConfig()
	lc.ServiceName = "valley-companion-cli"
	lc.Level = logger.LogLevelWarn
	if a.verbose {
		lc.Level = logger.LogLevelDebug
	}
	logger.InitLoggerWithWriter(lc, cmd.ErrOrStderr())

	switch a.output {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: use %s, %s or %s", a.output, outputTable, outputJSON, outputYAML)
	}
}

func (a *app) client() *client.APIClient {
	if a.api == nil {
		url := a.apiURL
		if url == "" {
			url = a.cfg.APIURL
		}
		a.api = client.NewAPIClient(url)
		slog.Debug("Using API", "url", url)
	}
	return a.api
}

func (a *app) store(ctx context.Context) (storage.KV, error) {
	if a.kv != nil {
		return a.kv, nil
	}

	backend := a.state
	if backend == "" {
		backend = a.cfg.StateBackend
	}
	kv, closeFn, err := storage.New(ctx, storage.Options{
		Backend:       backend,
		Dir:           a.cfg.StateDir,
		RedisAddr:     a.cfg.RedisAddr,
		RedisPassword: a.cfg.RedisPassword,
		RedisDB:       a.cfg.RedisDB,
		KeyPrefix:     storage.DefaultKeyPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s state store: %w", backend, err)
	}
	a.kv, a.closeKV = kv, closeFn
	return kv, nil
}

func (a *app) plans(ctx context.Context) (*planner.Repository, error) {
	kv, err := a.store(ctx)
	if err != nil {
		return nil, err
	}
	return planner.NewRepository(kv), nil
}

func (a *app) favorites(ctx context.Context) (*favorites.Repository, error) {
	kv, err := a.store(ctx)
	if err != nil {
		return nil, err
	}
	return favorites.NewRepository(kv), nil
}

// context bounds one command's API and storage calls
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.timeout)
}

func (a *app) close() {
	if a.closeKV != nil {
		if err := a.closeKV(); err != nil {
			slog.Warn("Failed to close state store", "error", err)
		}
		a.closeKV = nil
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "companion",
		Short:             "Valley Companion terminal client",
		Long:              `Look up crops, fish, villagers, recipes, mines and bundles, and keep a crop plan and favorite recipes.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.apiURL, "api", "", "API base URL (default $API_URL)")
	flags.StringVarP(&a.output, "output", "o", outputTable, "output format: table, json or yaml")
	flags.DurationVar(&a.timeout, "timeout", 15*time.Second, "request timeout")
	flags.StringVar(&a.state, "state", "", "state backend: file, redis or memory (default $STATE_BACKEND)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newCropsCmd(a),
		newCropCmd(a),
		newFishCmd(a),
		newNPCsCmd(a),
		newRecipesCmd(a),
		newMiningCmd(a),
		newBundlesCmd(a),
		newSearchCmd(a),
		newPlanCmd(a),
		newFavoritesCmd(a),
	)
	return root
}
