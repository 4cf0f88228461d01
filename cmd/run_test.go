package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newStageCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "corpus"}
	c.Flags().String("outdir", "", "")
	c.Flags().String("proxy", "", "")
	c.Flags().String("tables", "", "")
	if err := c.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return c
}

func TestBuildConfigTablesDir(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("output.dir", "from-config")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"outdir flag", []string{"--outdir", "custom"}, "custom"},
		{"tables flag wins", []string{"--outdir", "custom", "--tables", "previous"}, "previous"},
		{"config output dir", nil, "from-config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := buildConfig(newStageCmd(t, tt.args...))
			if cfg.TablesDir != tt.want {
				t.Fatalf("expected tables dir %q, got %q", tt.want, cfg.TablesDir)
			}
		})
	}
}

func TestOutputDirDefault(t *testing.T) {
	t.Cleanup(viper.Reset)
	if got := outputDir(newStageCmd(t)); got != "out" {
		t.Fatalf("expected default output dir out, got %q", got)
	}
}
