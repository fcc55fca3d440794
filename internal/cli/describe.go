package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelterpaws/cattery/internal/genai"
)

var describeCmd = &cobra.Command{
	Use:   "describe <keywords>...",
	Short: "Generate a description from keywords",
	Long: `Describe turns a few keywords into a short adoption-friendly
description through the configured generation service. Requires
genai.api_key in config.yaml; without it, or on any service failure, a
fallback message is printed instead.

Example:
  cattery describe שובב חברותי אוהב-ליטופים`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	describer := genai.NewDescriber(cfg.GenAI)
	text := describer.GenerateOrFallback(cmd.Context(), strings.Join(args, ", "))
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
