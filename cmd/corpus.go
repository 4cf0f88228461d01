package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sw33tLie/lookalike/pkg/pipeline"
)

// corpusCmd implements: lookalike corpus
var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Generate the labeled homoglyph benchmark corpus",
	Long: `Generates benchmark.json and benchmark.csv from a previously built full
confusable table. Fails before writing anything if the table is missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStages(cmd, pipeline.StageCorpus)
	},
}

func addCorpusFlags(cmd *cobra.Command) {
	cmd.Flags().String("composability", "", "JSON file of {char, tr39, nfkc} triples (default: derived from the full table)")
	cmd.Flags().StringSlice("protected", nil, "Protected identifiers, hostnames or URLs (default from config, else the built-in list)")
}

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.Flags().String("tables", "", "Directory holding confusables_full.json (default: output directory)")
	addCorpusFlags(corpusCmd)
	addDBFlags(corpusCmd)
}
