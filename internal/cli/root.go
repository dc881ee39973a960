package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/forgo/gamesdb/internal/config"
	"github.com/forgo/gamesdb/internal/database"
	"github.com/forgo/gamesdb/internal/metrics"
	"github.com/forgo/gamesdb/internal/repository"
)

// StoreFactory builds the store a command runs against.
type StoreFactory func(cfg *config.Config, logger *slog.Logger) (database.Store, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "yaml"
	Metrics bool

	newStore StoreFactory
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"json", "yaml"}

// NewRootCommand creates the root command for the gamesdb CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(func(cfg *config.Config, logger *slog.Logger) (database.Store, error) {
		return database.NewStore(cfg.StoreConfig(), logger)
	})
}

func newRootCommand(newStore StoreFactory) *cobra.Command {
	opts := &RootOptions{newStore: newStore}

	cmd := &cobra.Command{
		Use:   "gamesdb",
		Short: "Inspect and edit the games document store",
		Long: `Read and write BoardGameGeek games, retailer prices, canonical games
and game relations by their domain key.

Connection settings come from GAMESDB_* environment variables, optionally
loaded from .env and .env.local.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "json", "output format (json|yaml)")
	cmd.PersistentFlags().BoolVar(&opts.Metrics, "metrics", false, "print store metrics to stderr on exit")

	cmd.AddCommand(newGetCommand(opts))
	cmd.AddCommand(newPutCommand(opts))
	cmd.AddCommand(newDeleteCommand(opts))
	cmd.AddCommand(newIDsCommand(opts))
	cmd.AddCommand(newMaxCommand(opts))
	cmd.AddCommand(newCountCommand(opts))
	cmd.AddCommand(newCheckCommand(opts))

	return cmd
}

// withDatabase loads configuration, opens the store and runs fn against it.
// The store is closed, and metrics printed when requested, after fn returns.
func withDatabase(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, db *repository.GamesDatabase) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}

	level := cfg.SlogLevel()
	if opts.Verbose {
		level = slog.LevelDebug
	}
	opts.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	opts.recorder = metrics.NewRecorder(nil)

	store, err := opts.newStore(cfg, opts.logger)
	if err != nil {
		return err
	}
	db := repository.NewGamesDatabase(store, opts.logger, opts.recorder)
	if err := db.Open(ctx); err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(ctx); cerr != nil {
			opts.logger.Error("failed to close store", slog.String("error", cerr.Error()))
		}
		if opts.Metrics {
			if werr := opts.recorder.WriteText(cmd.ErrOrStderr()); werr != nil && err == nil {
				err = werr
			}
		}
	}()

	return fn(ctx, db)
}
