// Package main provides the learning01 CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AndNovian/learning01/internal/config"
	"github.com/AndNovian/learning01/internal/goal"
	"github.com/AndNovian/learning01/internal/storage"
	"github.com/AndNovian/learning01/internal/tracker"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// dbFlag overrides the goal store location
	dbFlag string
	// jsonOutput switches results from plain messages to JSON
	jsonOutput bool
	// clock stamps new goals and exports; replaced in tests
	clock goal.Clock = goal.SystemClock
)

func main() {
	err := execute(os.Args[1:])
	if err != nil {
		// SilenceErrors is set, so print here
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	}
	os.Exit(exitCode(err))
}

var rootCmd = &cobra.Command{
	Use:   "learning01",
	Short: "Track small learning goals",
	Long: `learning01 tracks short goals with a status (todo, doing, done).

Goals are stored as a JSON array in .learning01/goals.json by default.
Override the location with --db, $LEARNING01_DB (a .env file is read),
or db_path in ~/.config/learning01/config.yml.

Run without a command to show the banner.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file if present (ignore error if missing)
		_ = godotenv.Load()
	},
	RunE: runBanner,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to goals JSON (default .learning01/goals.json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of plain messages")
	rootCmd.Version = Version
}

// execute runs the root command with args.
func execute(args []string) error {
	rootCmd.SetArgs(positionalGoalArgs(args))
	return rootCmd.Execute()
}

// openTracker resolves configuration and returns a tracker over the configured store.
func openTracker() (*tracker.Tracker, error) {
	cfg, err := config.Resolve(dbFlag)
	if err != nil {
		return nil, err
	}
	return tracker.New(storage.NewGoalStore(cfg.DBPath), clock), nil
}

// exitCode maps a command's error to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, storage.ErrCorruptStore):
		return ExitDataError
	case errors.Is(err, config.ErrInvalidGlobalConfig):
		return ExitConfigError
	default:
		return ExitError
	}
}
