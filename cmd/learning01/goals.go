package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AndNovian/learning01/internal/goal"
	"github.com/AndNovian/learning01/internal/tracker"
	"github.com/spf13/cobra"
)

var listStatusFilter string

func init() {
	rootCmd.AddCommand(addGoalCmd)

	listGoalsCmd.Flags().StringVarP(&listStatusFilter, "status", "s", "", "Only list goals with this status (todo, doing, done)")
	rootCmd.AddCommand(listGoalsCmd)

	rootCmd.AddCommand(updateStatusCmd)
}

var addGoalCmd = &cobra.Command{
	Use:   "add-goal <title>",
	Short: "Add a new learning goal",
	Long: `Append a goal with status todo.

Example:
  learning01 add-goal "Ship tiny feature"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAddGoal,
}

func runAddGoal(cmd *cobra.Command, args []string) error {
	tr, err := openTracker()
	if err != nil {
		return err
	}

	// A missing title is rejected by the tracker like an empty one
	var title string
	if len(args) == 1 {
		title = args[0]
	}

	result, err := tr.AddGoal(title)
	return report(cmd, result, err)
}

var listGoalsCmd = &cobra.Command{
	Use:   "list-goals",
	Short: "List current goals",
	Long: `List goals in the order they were added, numbered by goal id.

Examples:
  learning01 list-goals
  learning01 list-goals --status doing`,
	Args: cobra.NoArgs,
	RunE: runListGoals,
}

func runListGoals(cmd *cobra.Command, args []string) error {
	tr, err := openTracker()
	if err != nil {
		return err
	}
	result, err := tr.ListGoals(listStatusFilter)
	return report(cmd, result, err)
}

var updateStatusCmd = &cobra.Command{
	Use:   "update-status <goal_id> <status>",
	Short: "Update goal status",
	Long: fmt.Sprintf(`Set the status of a goal.

goal_id is the 1-based number shown by list-goals.
status is one of: %s.

Example:
  learning01 update-status 1 doing`, goal.ValidStatusList()),
	Args: cobra.MaximumNArgs(2),
	RunE: runUpdateStatus,
}

func runUpdateStatus(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return report(cmd, nil, &tracker.InputError{
			Message: "Missing goal id or status. Usage: update-status <goal_id> <status>",
		})
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return report(cmd, nil, &tracker.InputError{
			Message: fmt.Sprintf("Invalid goal id '%s'. Goal ids are whole numbers.", args[0]),
		})
	}

	tr, err := openTracker()
	if err != nil {
		return err
	}
	result, err := tr.UpdateStatus(id, args[1])
	return report(cmd, result, err)
}

// positionalGoalArgs rewrites an update-status invocation so negative numbers
// are arguments rather than shorthand flags. pflag would otherwise reject "-1"
// before the tracker can report it as an out-of-range id.
func positionalGoalArgs(args []string) []string {
	at := -1
	for i, a := range args {
		if a == "--" {
			return args
		}
		if a == updateStatusCmd.Name() && (i == 0 || args[i-1] != "--db") {
			at = i
			break
		}
	}
	if at < 0 {
		return args
	}

	var flags, positional []string
	negative := false
	rest := args[at+1:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		switch {
		case a == "--":
			return args
		case isNegativeInt(a):
			negative = true
			positional = append(positional, a)
		case a == "--db" && i+1 < len(rest):
			flags = append(flags, a, rest[i+1])
			i++
		case strings.HasPrefix(a, "-"):
			flags = append(flags, a)
		default:
			positional = append(positional, a)
		}
	}
	if !negative {
		return args
	}

	out := append([]string{}, args[:at+1]...)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

func isNegativeInt(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}
