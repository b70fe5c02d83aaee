// Command seed loads a YAML fixture of employees and projects into the
// configured database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/staffing-backend/internal/app"
	"github.com/yungbote/staffing-backend/internal/platform/shutdown"
	"github.com/yungbote/staffing-backend/internal/seed"
)

var (
	dryRun      bool
	concurrency int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load staffing fixtures",
	Long: `seed reads a YAML fixture and writes its employees and projects using
the same database settings as the API server (DB_DRIVER, POSTGRES_*, SQLITE_PATH).`,
}

func init() {
	loadCmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and report without writing")
	loadCmd.Flags().IntVar(&concurrency, "concurrency", 1, "parallel project creations")
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(validateCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Insert the fixture into the database",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a fixture without touching the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := seed.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d employees, %d projects\n", len(f.Employees), len(f.Projects))
		return nil
	},
}

func runLoad(cmd *cobra.Command, args []string) error {
	f, err := seed.LoadFile(args[0])
	if err != nil {
		return err
	}

	ctx, stop := shutdown.NotifyContext(cmd.Context())
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	seeder := seed.NewSeeder(a.Log, a.Repos.Employee, a.Services.Project)
	res, err := seeder.Apply(ctx, f, seed.Options{DryRun: dryRun, Concurrency: concurrency})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d employees, %d projects\n", len(res.Employees), len(res.Projects))
	return nil
}
