package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shelterpaws/cattery/internal/catalog"
	"github.com/shelterpaws/cattery/pkg/types"
)

var (
	addName     string
	addLocation string
	addYear     int
	addAbout    string
	addImages   []string
	addVideos   []string
	addUploads  []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new cat profile",
	Long: `Add creates a new cat profile. All of name, location, year, and
about are required, plus at least one media item.

URLs are stored as-is; --upload reads a local file into the media blob
store. YouTube URLs added with --video render as embeds.

Example:
  cattery add --name "לונה" --location 2 --year 2024 --about "חתולה סקרנית." --image https://example.com/luna.jpg
  cattery add --name "טום" --location 1 --year 2023 --about "רגוע מאוד." --upload ./tom.jpg`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "cat name (required)")
	addCmd.Flags().StringVar(&addLocation, "location", "", "location ID (default: first location)")
	addCmd.Flags().IntVar(&addYear, "year", 0, "shelter entry year (default: current year)")
	addCmd.Flags().StringVar(&addAbout, "about", "", "free-text description (required)")
	addCmd.Flags().StringArrayVar(&addImages, "image", nil, "image URL (repeatable)")
	addCmd.Flags().StringArrayVar(&addVideos, "video", nil, "video URL (repeatable)")
	addCmd.Flags().StringArrayVar(&addUploads, "upload", nil, "local media file to store (repeatable)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	form := catalog.NewForm(cfg.Locations)
	form.Name = addName
	if addLocation != "" {
		form.LocationID = addLocation
	}
	if addYear != 0 {
		form.ShelterEntryYear = addYear
	}
	form.About = addAbout

	if err := attachMedia(form, addImages, addVideos, addUploads); err != nil {
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
	fmt.Fprintf(cmd.OutOrStdout(), "Created cat: %s\n", cat.ID)
	return nil
}

// attachMedia appends URL and upload drafts to the form in flag order:
// images, then videos, then uploads.
func attachMedia(form *catalog.Form, images, videos, uploads []string) error {
	for _, url := range images {
		form.AttachURL(types.MediaImage, url)
	}
	for _, url := range videos {
		form.AttachURL(types.MediaVideo, url)
	}
	for _, path := range uploads {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read media file: %w", err)
		}
		contentType := mime.TypeByExtension(filepath.Ext(path))
		form.AttachUpload(data, contentType)
	}
	return nil
}

// submitError keeps the user-facing validation message on its own, without
// wrapping noise.
func submitError(err error) error {
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		return errors.New(verr.Message)
	}
	if errors.Is(err, types.ErrNotFound) {
		return errors.New("cat not found")
	}
	return fmt.Errorf("save cat: %w", err)
}
