// Package cli implements the cattery command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelterpaws/cattery/internal/blob"
	"github.com/shelterpaws/cattery/internal/catalog"
	"github.com/shelterpaws/cattery/internal/sqlite"
	"github.com/shelterpaws/cattery/pkg/types"
)

// Exit codes.
const (
	exitUserError = 1
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Process-wide state initialized by PersistentPreRunE.
var (
	cfg     types.Config
	store   types.Store
	blobs   blob.Store
	service *catalog.Service
)

var rootCmd = &cobra.Command{
	Use:   "cattery",
	Short: "Cattery manages a shelter cat catalog",
	Long: `Cattery is a persistent catalog of shelter cats: profiles with a
location, a shelter entry year, free text, and a media gallery. Records
survive restarts; an empty catalog is seeded with a starter record on
first load.`,
	SilenceUsage:       true,
	PersistentPreRunE:  attachCatalog,
	PersistentPostRunE: detachCatalog,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir, e.g. ~/.config/cattery)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.cattery-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// attachCatalog loads configuration and attaches the record store and the
// blob store. Commands that never touch storage skip it.
func attachCatalog(cmd *cobra.Command, args []string) error {
	if skipAttach(cmd) {
		return nil
	}

	loaded, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return fmt.Errorf("attach store: %w", err)
	}
	store = backend

	blobs, err = blob.Open(cmd.Context(), cfg)
	if err != nil {
		store.Detach()
		return fmt.Errorf("open blob store: %w", err)
	}

	service = catalog.NewService(store, blobs, cfg, slog.Default())
	return nil
}

// detachCatalog releases the store. Idempotent because the store's Detach is.
func detachCatalog(cmd *cobra.Command, args []string) error {
	if store != nil {
		return store.Detach()
	}
	return nil
}

// skipAttach reports whether the command runs without storage.
func skipAttach(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return true
	}
	return false
}

// loadCatalog returns the full record set, seeding first when empty.
func loadCatalog(ctx context.Context) ([]*types.Cat, error) {
	return service.Load(ctx)
}
