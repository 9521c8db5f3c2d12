package storage

import (
	"testing"

	"github.com/AndNovian/learning01/internal/goal"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := OpenIndex()
	if err != nil {
		t.Fatalf("OpenIndex() error = %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestIndex_Rebuild(t *testing.T) {
	idx := openTestIndex(t)

	n, err := idx.Rebuild(sampleGoals())
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Rebuild() = %d, want 3", n)
	}

	// Rebuilding replaces rather than appends
	n, err = idx.Rebuild(sampleGoals()[:1])
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Rebuild() = %d, want 1", n)
	}

	doing, err := idx.ByStatus(goal.StatusDoing)
	if err != nil {
		t.Fatalf("ByStatus() error = %v", err)
	}
	if len(doing) != 1 {
		t.Errorf("ByStatus(doing) returned %d goals, want 1", len(doing))
	}
	todo, err := idx.ByStatus(goal.StatusTodo)
	if err != nil {
		t.Fatalf("ByStatus() error = %v", err)
	}
	if len(todo) != 0 {
		t.Errorf("ByStatus(todo) returned %d goals after rebuild, want 0", len(todo))
	}
}

func TestIndex_ByStatus_KeepsPositions(t *testing.T) {
	idx := openTestIndex(t)

	goals := []goal.Goal{
		{Title: "A", Status: goal.StatusDone, CreatedAt: "t1"},
		{Title: "B", Status: goal.StatusTodo, CreatedAt: "t2"},
		{Title: "C", Status: goal.StatusDone, CreatedAt: "t3"},
	}
	if _, err := idx.Rebuild(goals); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	done, err := idx.ByStatus(goal.StatusDone)
	if err != nil {
		t.Fatalf("ByStatus() error = %v", err)
	}
	if len(done) != 2 {
		t.Fatalf("ByStatus(done) returned %d goals, want 2", len(done))
	}
	if done[0].ID != 1 || done[1].ID != 3 {
		t.Errorf("positions = %d, %d, want 1, 3", done[0].ID, done[1].ID)
	}
	if done[1].Goal.Title != "C" || done[1].Goal.CreatedAt != "t3" || done[1].Goal.Status != goal.StatusDone {
		t.Errorf("done[1] = %+v, want C/t3/done", done[1].Goal)
	}
}

func TestIndex_Rebuild_Empty(t *testing.T) {
	idx := openTestIndex(t)

	n, err := idx.Rebuild(nil)
	if err != nil {
		t.Fatalf("Rebuild(nil) error = %v", err)
	}
	if n != 0 {
		t.Errorf("Rebuild(nil) = %d, want 0", n)
	}

	got, err := idx.ByStatus(goal.StatusTodo)
	if err != nil {
		t.Fatalf("ByStatus() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ByStatus() returned %d goals, want 0", len(got))
	}
}

func TestIndex_CountByStatus(t *testing.T) {
	idx := openTestIndex(t)

	goals := []goal.Goal{
		{Title: "A", Status: goal.StatusDone, CreatedAt: "t1"},
		{Title: "B", Status: goal.StatusTodo, CreatedAt: "t2"},
		{Title: "C", Status: goal.StatusDone, CreatedAt: "t3"},
	}
	if _, err := idx.Rebuild(goals); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	counts, err := idx.CountByStatus()
	if err != nil {
		t.Fatalf("CountByStatus() error = %v", err)
	}
	if counts[goal.StatusDone] != 2 {
		t.Errorf("done = %d, want 2", counts[goal.StatusDone])
	}
	if counts[goal.StatusTodo] != 1 {
		t.Errorf("todo = %d, want 1", counts[goal.StatusTodo])
	}
	if _, ok := counts[goal.StatusDoing]; ok {
		t.Errorf("doing present with no goals: %v", counts)
	}
}

func TestIndex_CountByStatus_Empty(t *testing.T) {
	idx := openTestIndex(t)
	if _, err := idx.Rebuild(nil); err != nil {
		t.Fatalf("Rebuild(nil) error = %v", err)
	}

	counts, err := idx.CountByStatus()
	if err != nil {
		t.Fatalf("CountByStatus() error = %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("CountByStatus() = %v, want empty", counts)
	}
}
