package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelterpaws/cattery/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one cat by ID",
	Long: `Get fetches a single cat profile by its ID.

Example:
  cattery get c1
  cattery get c1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	cat, err := service.Get(cmd.Context(), args[0])
	if errors.Is(err, types.ErrNotFound) {
		return fmt.Errorf("cat %s not found", args[0])
	}
	if err != nil {
		return fmt.Errorf("get cat: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(cat, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal cat: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:       %s\n", cat.ID)
	fmt.Fprintf(out, "Name:     %s\n", cat.Name)
	fmt.Fprintf(out, "Location: %s\n", locationName(cat.LocationID))
	fmt.Fprintf(out, "Year:     %d\n", cat.Description.ShelterEntryYear)
	fmt.Fprintf(out, "About:    %s\n", cat.Description.About)
	fmt.Fprintf(out, "Created:  %s\n", cat.CreatedAt.Format("2006-01-02 15:04"))
	for i, item := range cat.Media {
		fmt.Fprintf(out, "Media %d:  [%s] %s\n", i+1, item.Kind, item.Content)
	}
	return nil
}
