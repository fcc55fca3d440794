package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shelterpaws/cattery/internal/catalog"
	"github.com/shelterpaws/cattery/pkg/types"
)

var listLocation string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cats in the catalog",
	Long: `List fetches the catalog, newest first, and displays it. An empty
catalog is seeded with the starter record first.

Use --location to filter by location ID; "all" shows every cat.

Example:
  cattery list
  cattery list --location 2
  cattery list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listLocation, "location", types.LocationAll, "filter by location ID")
}

func runList(cmd *cobra.Command, args []string) error {
	cats, err := loadCatalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	visible := catalog.FilterByLocation(cats, listLocation)

	if flagJSON {
		output, err := json.MarshalIndent(visible, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal cats: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	printCatTable(cmd, visible)
	return nil
}

// printCatTable prints cats in a human-readable table format.
func printCatTable(cmd *cobra.Command, cats []*types.Cat) {
	out := cmd.OutOrStdout()
	if len(cats) == 0 {
		fmt.Fprintln(out, "No cats found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tYEAR\tMEDIA\tCREATED")
	fmt.Fprintln(w, "--\t----\t--------\t----\t-----\t-------")
	for _, cat := range cats {
		shortID := cat.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			shortID,
			cat.Name,
			locationName(cat.LocationID),
			cat.Description.ShelterEntryYear,
			len(cat.Media),
			cat.CreatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()

	fmt.Fprintf(out, "Total: %d cat(s)\n", len(cats))
}

// locationName maps a location ID to its display name, falling back to the
// raw ID for unknown values.
func locationName(id string) string {
	for _, loc := range cfg.Locations {
		if loc.ID == id {
			return strings.TrimSpace(loc.Name)
		}
	}
	return id
}
