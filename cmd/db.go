package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/lookalike/pkg/confusables"
	"github.com/sw33tLie/lookalike/pkg/storage"
)

// dbCmd represents the db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Interact with the lookalike database",
}

// openExistingDB opens the database named by --dbpath, refusing to create one.
func openExistingDB(cmd *cobra.Command) (*storage.DB, string, error) {
	dbPath := dbPathOpt(cmd)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, dbPath, fmt.Errorf("database file not found: %s", dbPath)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, dbPath, err
	}
	return db, dbPath, nil
}

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive shell to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := dbPathOpt(cmd)

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return fmt.Errorf("database file not found: %s", dbPath)
		}

		// Check if sqlite3 is in PATH
		sqlitePath, err := exec.LookPath("sqlite3")
		if err != nil {
			return fmt.Errorf("sqlite3 command not found in your PATH. Please install it to use the db shell")
		}

		// Print schema first
		fmt.Println("--> Database schema:")
		schemaCmd := exec.Command(sqlitePath, dbPath, ".schema")
		schemaCmd.Stdout = os.Stdout
		schemaCmd.Stderr = os.Stderr
		if err := schemaCmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: couldn't retrieve schema: %v\n", err)
		}
		fmt.Println("\n--> Starting interactive shell... (Ctrl+D to exit)")

		c := exec.Command(sqlitePath, dbPath)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		return c.Run()
	},
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints statistics about the stored tables and corpus.",
	Long:  "Prints statistics about the stored tables and corpus.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openExistingDB(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := context.Background()
		full, filtered, err := db.CountConfusables(ctx)
		if err != nil {
			return err
		}
		stats, err := db.GetStats(ctx)
		if err != nil {
			return err
		}

		if full == 0 && len(stats) == 0 {
			fmt.Println("No data in the database to generate stats.")
			return nil
		}

		fmt.Printf("Confusables: %d full, %d filtered\n\n", full, filtered)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "CATEGORY\tLABEL\tROWS\t")

		var total int
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%s\t%d\t\n", s.Category, s.Label, s.Rows)
			total += s.Rows
		}

		fmt.Fprintln(w, " \t \t \t")
		fmt.Fprintf(w, "TOTAL\t\t%d\t\n", total)

		w.Flush()

		return nil
	},
}

// rowsCmd represents the rows command
var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "List stored benchmark rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openExistingDB(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		category, _ := cmd.Flags().GetString("category")
		label, _ := cmd.Flags().GetString("label")
		target, _ := cmd.Flags().GetString("target")
		limit, _ := cmd.Flags().GetInt("limit")

		rows, err := db.ListRows(context.Background(), storage.ListOptions{
			Category: category,
			Label:    label,
			Target:   target,
			Limit:    limit,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tIDENTIFIER\tLABEL\tTARGET\tCATEGORY\tCODEPOINTS")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, strconv.QuoteToASCII(r.Identifier), r.Label, r.ProtectedTarget, r.Category, describeIdentifier(r.Identifier))
		}
		return w.Flush()
	},
}

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <char|U+XXXX>",
	Short: "Show the stored mapping of one character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := parseCodepoint(args[0])
		if err != nil {
			return err
		}

		db, _, err := openExistingDB(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		rec, ok, err := db.LookupConfusable(context.Background(), r)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("%s is not in the confusable table\n", confusables.Label(r))
			return nil
		}

		fmt.Printf("%s %s -> %s\n", confusables.Label(rec.Source), strconv.QuoteRuneToGraphic(rec.Source), rec.Target)
		fmt.Printf("  block:    %s\n", rec.Block)
		fmt.Printf("  filtered: %t\n", rec.InFiltered)
		if rec.Comment != "" {
			fmt.Printf("  comment:  %s\n", rec.Comment)
		}
		return nil
	},
}

// parseCodepoint accepts "U+0430", "0x0430", "0430" or the character itself.
func parseCodepoint(s string) (rune, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if r > 0x7F {
			return r, nil
		}
	}
	hex := strings.ToUpper(s)
	for _, prefix := range []string{"U+", "0X"} {
		hex = strings.TrimPrefix(hex, prefix)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || v > 0x10FFFF {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(v), nil
}

func describeIdentifier(s string) string {
	labels := make([]string, 0, len(s))
	for _, r := range s {
		if r > 0x7F {
			labels = append(labels, confusables.Label(r))
		}
	}
	return strings.Join(labels, " ")
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(shellCmd)
	dbCmd.AddCommand(statsCmd)
	dbCmd.AddCommand(rowsCmd)
	dbCmd.AddCommand(lookupCmd)
	dbCmd.PersistentFlags().String("dbpath", "", "Path to SQLite DB file (default from config, else lookalike.sqlite)")

	rowsCmd.Flags().String("category", "", "Only rows of this category")
	rowsCmd.Flags().String("label", "", "Only rows with this label (malicious, benign)")
	rowsCmd.Flags().String("target", "", "Only rows attacking this protected identifier")
	rowsCmd.Flags().Int("limit", 0, "Maximum number of rows (0 = all)")
}
