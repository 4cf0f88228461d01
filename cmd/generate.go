package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sw33tLie/lookalike/pkg/pipeline"
)

// generateCmd implements: lookalike generate
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build tables, corpus and perceptual lookup in one run",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStages(cmd, pipeline.StageAll)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addTablesFlags(generateCmd)
	addCorpusFlags(generateCmd)
	addPerceptualFlags(generateCmd)
	addDBFlags(generateCmd)
}
