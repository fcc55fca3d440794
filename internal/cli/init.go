package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize cattery storage",
	Long: `Create the configuration and data directories, write a default
config.yaml when missing, and initialize the storage backend. The catalog
itself is seeded on first list.`,
	RunE: runInit,
}

// runInit only reports success: PersistentPreRunE already created the
// config file, attached the store, and built the schema.
func runInit(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Cattery initialized (data: %s)\n", cfg.DataDir)
	return nil
}
