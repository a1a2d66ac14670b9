package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/gridline/internal/infrastructure/sqlite"
	"github.com/zjrosen/gridline/internal/infrastructure/sqlstore"
)

var seedCount int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo SQLite database and fill it with people",
	Long: `Creates (or migrates) the demo SQLite database configured under store.database
and inserts demo people into its people table.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 200, "number of people to insert")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if d, err := sqlstore.ParseDialect(cfg.Store.Driver); err != nil || d != sqlstore.SQLite {
		return fmt.Errorf("seed needs the sqlite driver, got %q", cfg.Store.Driver)
	}
	if seedCount < 1 {
		return fmt.Errorf("count must be positive, got %d", seedCount)
	}

	db, err := sqlite.NewDB(expandHome(cfg.Store.Database))
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Seed(cmd.Context(), seedCount); err != nil {
		return err
	}
	total, err := db.Count(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Printf("Seeded %d people into %s (%d total)\n", seedCount, db.Path(), total)
	return nil
}
