package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a cat by ID",
	Long: `Delete removes a cat profile. Without --yes it asks for
confirmation first; declining leaves the catalog untouched. Deleting an ID
that does not exist is a no-op.

Example:
  cattery delete c1
  cattery delete c1 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	confirmed := deleteYes
	if !confirmed {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete cat %s? [y/N] ", args[0])
		answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil {
			answer = ""
		}
		confirmed = strings.EqualFold(strings.TrimSpace(answer), "y")
	}

	if !confirmed {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}

	if err := service.Delete(cmd.Context(), args[0], true); err != nil {
		return fmt.Errorf("delete cat: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted cat: %s\n", args[0])
	return nil
}
