package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelterpaws/cattery/internal/catalog"
	"github.com/shelterpaws/cattery/pkg/types"
)

var (
	editName       string
	editLocation   string
	editYear       int
	editAbout      string
	editImages     []string
	editVideos     []string
	editUploads    []string
	editClearMedia bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing cat profile",
	Long: `Edit updates a cat profile in place. Fields not given keep their
stored values; media flags append to the existing gallery unless
--clear-media drops it first. The ID never changes.

Example:
  cattery edit c1 --location 3
  cattery edit c1 --about "עבר למתחם אחר." --image https://example.com/new.jpg
  cattery edit c1 --clear-media --upload ./fresh.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "cat name")
	editCmd.Flags().StringVar(&editLocation, "location", "", "location ID")
	editCmd.Flags().IntVar(&editYear, "year", 0, "shelter entry year")
	editCmd.Flags().StringVar(&editAbout, "about", "", "free-text description")
	editCmd.Flags().StringArrayVar(&editImages, "image", nil, "image URL to append (repeatable)")
	editCmd.Flags().StringArrayVar(&editVideos, "video", nil, "video URL to append (repeatable)")
	editCmd.Flags().StringArrayVar(&editUploads, "upload", nil, "local media file to append (repeatable)")
	editCmd.Flags().BoolVar(&editClearMedia, "clear-media", false, "drop the existing gallery before appending")
}

func runEdit(cmd *cobra.Command, args []string) error {
	existing, err := service.Get(cmd.Context(), args[0])
	if errors.Is(err, types.ErrNotFound) {
		return fmt.Errorf("cat %s not found", args[0])
	}
	if err != nil {
		return fmt.Errorf("get cat: %w", err)
	}

	form := catalog.EditForm(existing)
	if editName != "" {
		form.Name = editName
	}
	if editLocation != "" {
		form.LocationID = editLocation
	}
	if editYear != 0 {
		form.ShelterEntryYear = editYear
	}
	if editAbout != "" {
		form.About = editAbout
	}

	if editClearMedia {
		for len(form.Media()) > 0 {
			form.RemoveMedia(0)
		}
	}
	if err := attachMedia(form, editImages, editVideos, editUploads); err != nil {
		return err
	}

	cat, err := service.Submit(cmd.Context(), form)
	if err != nil {
		return submitError(err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(cat, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal cat: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated cat: %s\n", cat.ID)
	return nil
}
