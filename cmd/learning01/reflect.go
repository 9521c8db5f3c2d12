package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reflectCmd)
}

var reflectCmd = &cobra.Command{
	Use:   "reflect",
	Short: "Show simple progress reflection",
	Long:  `Summarize goals per status with a truncated completion percentage.`,
	Args:  cobra.NoArgs,
	RunE:  runReflect,
}

func runReflect(cmd *cobra.Command, args []string) error {
	tr, err := openTracker()
	if err != nil {
		return err
	}
	result, err := tr.Reflect()
	return report(cmd, result, err)
}
