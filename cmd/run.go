package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sw33tLie/lookalike/internal/utils"
	"github.com/sw33tLie/lookalike/pkg/export"
	"github.com/sw33tLie/lookalike/pkg/pipeline"
	"github.com/sw33tLie/lookalike/pkg/storage"
)

// stringOpt returns the flag value when it was given on the command line,
// otherwise the config value.
func stringOpt(cmd *cobra.Command, flag, key string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	return viper.GetString(key)
}

func outputDir(cmd *cobra.Command) string {
	if dir := stringOpt(cmd, "outdir", "output.dir"); dir != "" {
		return dir
	}
	return "out"
}

func addDBFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("db", false, "Also save tables and corpus to the SQLite database")
	cmd.Flags().String("dbpath", "", "Path to SQLite DB file (default from config, else lookalike.sqlite)")
}

func dbPathOpt(cmd *cobra.Command) string {
	if p := stringOpt(cmd, "dbpath", "db.path"); p != "" {
		return p
	}
	return "lookalike.sqlite"
}

// buildConfig collects every input location from flags and config. Flags a
// command does not define fall back to config.
func buildConfig(cmd *cobra.Command) pipeline.Config {
	// Previous tables are read from the directory this run writes to unless
	// --tables points elsewhere.
	tablesDir := outputDir(cmd)
	if f := cmd.Flags().Lookup("tables"); f != nil && f.Changed && f.Value.String() != "" {
		tablesDir = f.Value.String()
	}

	protected := viper.GetStringSlice("corpus.protected")
	if f := cmd.Flags().Lookup("protected"); f != nil && f.Changed {
		protected, _ = cmd.Flags().GetStringSlice("protected")
	}

	proxy, _ := cmd.Flags().GetString("proxy")

	return pipeline.Config{
		ConfusablesPath: stringOpt(cmd, "confusables", "confusables.path"),
		ConfusablesURL:  stringOpt(cmd, "url", "confusables.url"),
		Proxy:           proxy,
		TablesDir:       tablesDir,
		CompositionPath: stringOpt(cmd, "composability", "corpus.composability"),
		ScoresPath:      stringOpt(cmd, "scores", "perceptual.scores"),
		DiagnosticsPath: stringOpt(cmd, "diagnostics", "perceptual.diagnostics"),
		Package:         stringOpt(cmd, "package", "output.package"),
		Protected:       protected,
	}
}

// runStages runs the selected stages while holding the output directory
// lock, then writes every artifact at once.
func runStages(cmd *cobra.Command, stages pipeline.Stage) error {
	outDir := outputDir(cmd)
	cfg := buildConfig(cmd)

	lock, err := utils.NewOutputLock(outDir)
	if err != nil {
		return err
	}
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := pipeline.Run(ctx, cfg, stages)
	if err != nil {
		return err
	}

	if err := export.WriteAll(outDir, res.Artifacts); err != nil {
		return err
	}
	res.Summary.Log(utils.Log)
	utils.Log.Infof("Wrote %d files to %s", len(res.Artifacts), outDir)

	useDB, _ := cmd.Flags().GetBool("db")
	if useDB {
		if err := saveRun(ctx, dbPathOpt(cmd), res); err != nil {
			return fmt.Errorf("save to database: %w", err)
		}
	}
	return nil
}

func saveRun(ctx context.Context, dbPath string, res *pipeline.Result) error {
	if res.Tables == nil {
		return fmt.Errorf("%w: no tables in this run to save", pipeline.ErrMissingPrerequisite)
	}

	lock, err := utils.NewDBLock(dbPath)
	if err != nil {
		return err
	}
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	db, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ReplaceRun(ctx, res.Tables.Full, res.Tables.Filtered, res.Rows); err != nil {
		return err
	}
	utils.Log.Infof("Saved %d confusables and %d corpus rows to %s", res.Tables.Full.Len(), len(res.Rows), dbPath)
	return nil
}
