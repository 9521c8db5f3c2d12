package tracker

import (
	"fmt"
	"strings"

	"github.com/AndNovian/learning01/internal/export"
	"github.com/AndNovian/learning01/internal/goal"
	"github.com/AndNovian/learning01/internal/storage"
)

// ExportOptions controls optional export outputs.
type ExportOptions struct {
	HTMLPath string // Also render the snapshot to HTML here when set
}

// ExportResult is the outcome of ExportMarkdown.
type ExportResult struct {
	Path     string `json:"path"`
	HTMLPath string `json:"html_path,omitempty"`
	Goals    int    `json:"goals"`
}

func (r ExportResult) String() string {
	msg := fmt.Sprintf("Exported markdown snapshot to %s", r.Path)
	if r.HTMLPath != "" {
		msg += fmt.Sprintf(" (html: %s)", r.HTMLPath)
	}
	return msg
}

// ExportMarkdown writes a markdown snapshot of all goals to path.
// The goal store itself is not modified.
func (t *Tracker) ExportMarkdown(path string, opts ExportOptions) (ExportResult, error) {
	if strings.TrimSpace(path) == "" {
		return ExportResult{}, inputErrorf("Output path cannot be empty.")
	}

	goals, err := t.store.Load()
	if err != nil {
		return ExportResult{}, err
	}

	doc := export.ToMarkdown(goals, goal.Timestamp(t.clock()))
	if err := storage.WriteFileAtomic(path, []byte(doc)); err != nil {
		return ExportResult{}, fmt.Errorf("writing snapshot: %w", err)
	}

	result := ExportResult{Path: path, Goals: len(goals)}

	if opts.HTMLPath != "" {
		html, err := export.ToHTML(doc)
		if err != nil {
			return ExportResult{}, err
		}
		if err := storage.WriteFileAtomic(opts.HTMLPath, html); err != nil {
			return ExportResult{}, fmt.Errorf("writing html snapshot: %w", err)
		}
		result.HTMLPath = opts.HTMLPath
	}

	return result, nil
}
