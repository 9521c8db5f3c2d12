package storage

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/AndNovian/learning01/internal/goal"
)

func sampleGoals() []goal.Goal {
	return []goal.Goal{
		{Title: "Build MVP", Status: goal.StatusDoing, CreatedAt: "2026-01-01T00:00:00Z"},
		{Title: "Write tests", Status: goal.StatusTodo, CreatedAt: "2026-01-02T00:00:00Z"},
		{Title: "Ship", Status: goal.StatusDone, CreatedAt: "2026-01-03T00:00:00Z"},
	}
}

func TestGoalStore_Load_NonExistentFile(t *testing.T) {
	s := NewGoalStore(filepath.Join(t.TempDir(), "missing", "goals.json"))

	goals, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v (should return empty list for missing file)", err)
	}
	if goals == nil || len(goals) != 0 {
		t.Errorf("Load() = %v, want empty non-nil slice", goals)
	}
	if s.Exists() {
		t.Error("Exists() = true for missing file")
	}
}

func TestGoalStore_SaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "goals.json")
	s := NewGoalStore(path)

	if err := s.Save(sampleGoals()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !s.Exists() {
		t.Fatal("Exists() = false after Save")
	}

	goals, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(goals) != 3 {
		t.Fatalf("Load() returned %d goals, want 3", len(goals))
	}

	// Order is preserved
	if goals[0].Title != "Build MVP" || goals[1].Title != "Write tests" || goals[2].Title != "Ship" {
		t.Errorf("Load() returned goals in wrong order: %q, %q, %q", goals[0].Title, goals[1].Title, goals[2].Title)
	}
	if goals[2].Status != goal.StatusDone {
		t.Errorf("goals[2].Status = %q, want done", goals[2].Status)
	}
}

func TestGoalStore_Save_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goals.json")
	s := NewGoalStore(path)

	goals := []goal.Goal{{Title: "A", Status: goal.StatusTodo, CreatedAt: "2026-01-01T00:00:00Z"}}
	if err := s.Save(goals); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `[
  {
    "title": "A",
    "status": "todo",
    "created_at": "2026-01-01T00:00:00Z"
  }
]
`
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func TestGoalStore_Save_EmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goals.json")
	s := NewGoalStore(path)

	if err := s.Save(nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]\n" {
		t.Errorf("file content = %q, want %q", data, "[]\n")
	}

	goals, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("Load() returned %d goals, want 0", len(goals))
	}
}

func TestGoalStore_Save_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewGoalStore(filepath.Join(dir, "goals.json"))

	if err := s.Save(sampleGoals()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "goals.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contains %v, want only goals.json", names)
	}
}

func TestGoalStore_Save_FailureKeepsPreviousContent(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("directory permissions not enforced")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "goals.json")
	s := NewGoalStore(path)

	if err := s.Save(sampleGoals()[:1]); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Read-only directory: temp file creation fails
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(dir, 0755)

	if err := s.Save(sampleGoals()); err == nil {
		t.Fatal("Save() into read-only directory should fail")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(before) {
		t.Errorf("file changed after failed save:\nbefore: %s\nafter: %s", before, after)
	}
}

func TestGoalStore_Load_Corrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"not json", "not json at all"},
		{"null", "null"},
		{"object", `{"title":"A","status":"todo","created_at":"x"}`},
		{"array of strings", `["a","b"]`},
		{"null element", `[null]`},
		{"unknown key", `[{"title":"A","status":"todo","created_at":"x","priority":1}]`},
		{"invalid status", `[{"title":"A","status":"blocked","created_at":"x"}]`},
		{"missing title", `[{"status":"todo","created_at":"x"}]`},
		{"missing created_at", `[{"title":"A","status":"todo"}]`},
		{"trailing data", `[] []`},
		{"truncated", `[{"title":"A"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "goals.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := NewGoalStore(path).Load()
			if !errors.Is(err, ErrCorruptStore) {
				t.Errorf("Load() error = %v, want ErrCorruptStore", err)
			}
		})
	}
}

func TestGoalStore_Load_AcceptsCompactAndWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goals.json")
	content := "\n  [{\"title\":\"A\",\"status\":\"done\",\"created_at\":\"2026-01-01T00:00:00+00:00\"}]  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	goals, err := NewGoalStore(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(goals) != 1 || goals[0].Status != goal.StatusDone {
		t.Errorf("Load() = %+v, want one done goal", goals)
	}
}

func TestGoalStore_Path(t *testing.T) {
	s := NewGoalStore("/tmp/x/goals.json")
	if s.Path() != "/tmp/x/goals.json" {
		t.Errorf("Path() = %q, want /tmp/x/goals.json", s.Path())
	}
}
