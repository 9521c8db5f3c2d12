package main

import (
	"github.com/AndNovian/learning01/internal/tracker"
	"github.com/spf13/cobra"
)

var exportHTMLPath string

func init() {
	exportMarkdownCmd.Flags().StringVar(&exportHTMLPath, "html", "", "Also render the snapshot to HTML at this path")
	rootCmd.AddCommand(exportMarkdownCmd)
}

var exportMarkdownCmd = &cobra.Command{
	Use:   "export-markdown <output-path>",
	Short: "Export a markdown summary snapshot",
	Long: `Write a markdown snapshot of all goals with reflection prompts.

Parent directories of the output path are created as needed.
The goal store is read but never modified.

Examples:
  learning01 export-markdown reports/week.md
  learning01 export-markdown reports/week.md --html reports/week.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExportMarkdown,
}

func runExportMarkdown(cmd *cobra.Command, args []string) error {
	tr, err := openTracker()
	if err != nil {
		return err
	}

	var output string
	if len(args) == 1 {
		output = args[0]
	}

	result, err := tr.ExportMarkdown(output, tracker.ExportOptions{HTMLPath: exportHTMLPath})
	return report(cmd, result, err)
}
