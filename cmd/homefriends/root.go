// Root command for the homefriends CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/homefriends/internal/engine"
	"github.com/dukaforge/homefriends/internal/memory"
	"github.com/dukaforge/homefriends/internal/sqlite"
	"github.com/dukaforge/homefriends/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// rowStoreCloser is what every backend provides: the adapter contract
// plus a lifecycle.
type rowStoreCloser interface {
	types.RowStore
	io.Closer
}

// Globals initialized by PersistentPreRunE for all subcommands.
var (
	store  rowStoreCloser
	eng    *engine.Engine
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "homefriends",
	Short: "Homefriends manages the child and pet adoption registry",
	Long: `Homefriends manages three record tables (Children, Pets, Owners) in a
tabular datastore and keeps the child-pet links between them consistent:
linking, replacing links, cascade deletes, and orphan clearing.`,
	Version: version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage:       true,
	PersistentPreRunE:  initStore,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeStore() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: .homefriends)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: .homefriends-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log informational messages")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(childCmd)
	rootCmd.AddCommand(petCmd)
	rootCmd.AddCommand(linkCmd)
}

// initStore loads config, opens the configured backend, and builds the
// engine. Skipped for the version command.
func initStore(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelInfo
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(resolveConfigDir())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	config := types.Config{
		Backend: cfg.GetString(cfgKeyBackend),
		DataDir: resolveDataDir(cfg.GetString(cfgKeyDataDir)),
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	switch config.Backend {
	case types.BackendSQLite:
		s, err := sqlite.Open(config)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		store = s
	case types.BackendMemory:
		store = memory.NewStore()
	}

	eng = engine.New(store, logger)
	return nil
}

// closeStore releases the backend.
func closeStore() error {
	if store != nil {
		return store.Close()
	}
	return nil
}

// resolveConfigDir returns the config directory from flag, env, or
// default.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if v := os.Getenv("HOMEFRIENDS_CONFIG_DIR"); v != "" {
		return v
	}
	return ".homefriends"
}

// resolveDataDir returns the data directory following the precedence
// --data-dir flag > config data_dir > HOMEFRIENDS_DATA_DIR env >
// default.
func resolveDataDir(fromConfig string) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if fromConfig != "" {
		return fromConfig
	}
	if v := os.Getenv("HOMEFRIENDS_DATA_DIR"); v != "" {
		return v
	}
	return ".homefriends-db"
}
