package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize learning workspace",
	Long: `Create an empty goal store.

Running init again on an existing store reports that it is already
initialized and leaves the file untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	tr, err := openTracker()
	if err != nil {
		return err
	}
	result, err := tr.Init()
	return report(cmd, result, err)
}
