// Package storage handles goal persistence: the JSON goal file and an ephemeral SQLite index.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AndNovian/learning01/internal/goal"
)

// ErrCorruptStore is returned when the goal file exists but is not a JSON array of goals.
var ErrCorruptStore = errors.New("corrupt goal store")

// GoalStore reads and writes the goal list at a fixed path.
// There is no locking; one process per invocation is assumed.
type GoalStore struct {
	path string
}

// NewGoalStore returns a store backed by the JSON file at path.
func NewGoalStore(path string) *GoalStore {
	return &GoalStore{path: path}
}

// Path returns the goal file path.
func (s *GoalStore) Path() string {
	return s.path
}

// Exists reports whether the goal file has been created.
func (s *GoalStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads all goals. A missing file is an empty list.
func (s *GoalStore) Load() ([]goal.Goal, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []goal.Goal{}, nil
		}
		return nil, fmt.Errorf("reading goals file: %w", err)
	}
	return parseGoals(data)
}

// parseGoals decodes a goal file strictly: a single JSON array of objects
// carrying only the known keys, each of which must validate.
func parseGoals(data []byte) ([]goal.Goal, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrCorruptStore)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var goals []goal.Goal
	if err := dec.Decode(&goals); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after array", ErrCorruptStore)
	}

	for i := range goals {
		if err := goals[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: goal %d: %v", ErrCorruptStore, i+1, err)
		}
	}

	if goals == nil {
		goals = []goal.Goal{}
	}
	return goals, nil
}

// Save writes the full goal list, creating parent directories as needed.
// A reader never sees a partial write.
func (s *GoalStore) Save(goals []goal.Goal) error {
	if goals == nil {
		goals = []goal.Goal{}
	}

	data, err := json.MarshalIndent(goals, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding goals: %w", err)
	}
	data = append(data, '\n')

	if err := WriteFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("writing goals: %w", err)
	}
	return nil
}

// WriteFileAtomic writes data to a temp file in the target directory and renames
// it into place, creating parent directories as needed.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}
