package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/lookalike/internal/utils"
	"github.com/sw33tLie/lookalike/pkg/pipeline"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	 _             _         _ _ _        
	| | ___   ___ | | ____ _| (_) | _____ 
	| |/ _ \ / _ \| |/ / _' | | | |/ / _ \
	| | (_) | (_) |   < (_| | | |   <  __/
	|_|\___/ \___/|_|\_\__,_|_|_|_|\_\___|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lookalike",
	Short: "Confusable character tables and homoglyph benchmark generator.",
	Long: LOGO + `lookalike builds conflict-resolved confusable tables from the Unicode
confusables dataset, merges them with measured glyph similarity scores, and
generates a labeled corpus of spoofed identifiers for testing validators.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lookalike.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("proxy", "", "", "HTTP Proxy for the dataset fetch (Example: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().StringP("outdir", "o", "", "Output directory (default from config, else ./out)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Defaults are set first so a freshly created config file lists every key.
	viper.SetDefault("confusables.url", pipeline.DefaultConfusablesURL)
	viper.SetDefault("confusables.path", "")
	viper.SetDefault("perceptual.scores", "data/glyph_scores.json")
	viper.SetDefault("perceptual.diagnostics", "data/glyph_diagnostics.json")
	viper.SetDefault("output.dir", "out")
	viper.SetDefault("output.package", pipeline.DefaultPackage)
	viper.SetDefault("corpus.protected", []string{})
	viper.SetDefault("corpus.composability", "")
	viper.SetDefault("db.path", "lookalike.sqlite")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".lookalike")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("lookalike")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.lookalike.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
