package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sw33tLie/lookalike/pkg/pipeline"
)

// tablesCmd implements: lookalike tables
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build the full and filtered confusable tables",
	Long: `Parses the Unicode confusables dataset, keeps single code point mappings to
a-z/0-9, resolves NFKC conflicts and writes confusables_full.json,
confusables_filtered.json and confusables_table.go.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStages(cmd, pipeline.StageTables)
	},
}

func addTablesFlags(cmd *cobra.Command) {
	cmd.Flags().String("confusables", "", "Read confusables.txt from this path instead of fetching it")
	cmd.Flags().String("url", "", "URL of confusables.txt (default from config)")
	cmd.Flags().String("package", "", "Package name of the generated Go table")
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	addTablesFlags(tablesCmd)
	addDBFlags(tablesCmd)
}
