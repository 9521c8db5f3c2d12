// Package export renders goal snapshots to markdown and HTML.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/AndNovian/learning01/internal/goal"
	"github.com/yuin/goldmark"
)

// SnapshotTitle is the top-level heading of a snapshot.
const SnapshotTitle = "learning01 Weekly Snapshot"

// ReflectionPrompts close every snapshot.
var ReflectionPrompts = []string{
	"What moved forward this week?",
	"What got blocked?",
	"What is the one smallest next step?",
}

// ToMarkdown builds the snapshot document for goals.
// The result ends with a newline.
func ToMarkdown(goals []goal.Goal, generatedAt string) string {
	lines := []string{
		"# " + SnapshotTitle,
		"",
		"Generated at: " + generatedAt,
		"",
	}

	if len(goals) == 0 {
		lines = append(lines, "No goals tracked yet.", "")
	} else {
		lines = append(lines, "## Goals", "")
		for _, n := range goal.Number(goals) {
			lines = append(lines, FormatGoalLine(n))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## Reflection Prompt", "")
	for _, p := range ReflectionPrompts {
		lines = append(lines, "- "+p)
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

// FormatGoalLine formats one goal as a snapshot bullet, e.g. "- 1. **[doing]** Build MVP".
func FormatGoalLine(n goal.Numbered) string {
	return fmt.Sprintf("- %d. **[%s]** %s", n.ID, n.Goal.Status, n.Goal.Title)
}

// ToHTML converts a markdown string to HTML using goldmark.
func ToHTML(markdown string) ([]byte, error) {
	var buf bytes.Buffer
	md := goldmark.New()
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}
	return buf.Bytes(), nil
}
