package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version string.
const Version = "0.1.0"

const modulePath = "github.com/shelterpaws/cattery"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cattery version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "cattery v%s\nmodule: %s\n", Version, modulePath)
		return nil
	},
}
