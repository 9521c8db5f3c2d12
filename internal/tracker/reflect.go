package tracker

import (
	"fmt"
	"strings"

	"github.com/AndNovian/learning01/internal/goal"
	"github.com/AndNovian/learning01/internal/storage"
)

// ReflectResult summarizes progress across all goals.
type ReflectResult struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	Doing      int `json:"doing"`
	Todo       int `json:"todo"`
	Completion int `json:"completion"` // percent, truncated
}

func (r ReflectResult) String() string {
	if r.Total == 0 {
		return "Reflection: No goals yet. Start by adding your first goal."
	}
	return strings.Join([]string{
		"Reflection:",
		fmt.Sprintf("- Total goals: %d", r.Total),
		fmt.Sprintf("- Done: %d", r.Done),
		fmt.Sprintf("- Doing: %d", r.Doing),
		fmt.Sprintf("- Todo: %d", r.Todo),
		fmt.Sprintf("- Completion: %d%%", r.Completion),
		"- Next step: complete one small goal today.",
	}, "\n")
}

// Reflect counts goals per status through the status index.
func (t *Tracker) Reflect() (ReflectResult, error) {
	goals, err := t.store.Load()
	if err != nil {
		return ReflectResult{}, err
	}
	if len(goals) == 0 {
		return ReflectResult{}, nil
	}

	idx, err := storage.OpenIndex()
	if err != nil {
		return ReflectResult{}, err
	}
	defer idx.Close()

	if _, err := idx.Rebuild(goals); err != nil {
		return ReflectResult{}, fmt.Errorf("indexing goals: %w", err)
	}
	counts, err := idx.CountByStatus()
	if err != nil {
		return ReflectResult{}, err
	}
	return fromCounts(len(goals), counts), nil
}

// Summarize computes per-status counts and the completion percentage.
func Summarize(goals []goal.Goal) ReflectResult {
	counts := make(map[goal.Status]int)
	for _, g := range goals {
		counts[g.Status]++
	}
	return fromCounts(len(goals), counts)
}

// fromCounts builds a summary from per-status counts.
// Completion is floor(100*done/total) in integer arithmetic.
func fromCounts(total int, counts map[goal.Status]int) ReflectResult {
	r := ReflectResult{
		Total: total,
		Done:  counts[goal.StatusDone],
		Doing: counts[goal.StatusDoing],
		Todo:  counts[goal.StatusTodo],
	}
	if r.Total > 0 {
		r.Completion = r.Done * 100 / r.Total
	}
	return r
}
