package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sw33tLie/lookalike/pkg/pipeline"
)

// perceptualCmd implements: lookalike perceptual
var perceptualCmd = &cobra.Command{
	Use:   "perceptual",
	Short: "Merge measured glyph scores into the perceptual lookup",
	Long: `Merges the full confusable table with a measured similarity score file and
writes perceptual_lookup.json and confusable_weights.json. The size ratio
diagnostics file is optional.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStages(cmd, pipeline.StagePerceptual)
	},
}

func addPerceptualFlags(cmd *cobra.Command) {
	cmd.Flags().String("scores", "", "Measured similarity score file (default from config)")
	cmd.Flags().String("diagnostics", "", "Size ratio diagnostics file (default from config)")
}

func init() {
	rootCmd.AddCommand(perceptualCmd)
	perceptualCmd.Flags().String("tables", "", "Directory holding confusables_full.json (default: output directory)")
	addPerceptualFlags(perceptualCmd)
}
