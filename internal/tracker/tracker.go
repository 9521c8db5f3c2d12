// Package tracker implements the goal commands on top of a goal store.
//
// Each operation loads the store, applies a pure transformation, saves if it
// mutated anything, and returns a result whose String method is the message
// shown to the user. Problems with user input come back as *InputError and are
// never fatal; store and I/O failures are returned as ordinary errors.
package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AndNovian/learning01/internal/goal"
	"github.com/AndNovian/learning01/internal/storage"
)

// Store is the persistence the tracker needs.
type Store interface {
	Path() string
	Exists() bool
	Load() ([]goal.Goal, error)
	Save(goals []goal.Goal) error
}

// Tracker runs goal commands against a store.
type Tracker struct {
	store Store
	clock goal.Clock
}

// New returns a Tracker. A nil clock uses the system clock.
func New(store Store, clock goal.Clock) *Tracker {
	if clock == nil {
		clock = goal.SystemClock
	}
	return &Tracker{store: store, clock: clock}
}

// InputError is a recoverable problem with user-supplied arguments.
// Its message is meant to be shown to the user as-is.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func inputErrorf(format string, args ...interface{}) error {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// IsInputError reports whether err is (or wraps) an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// Banner returns the fixed project description.
func Banner() string {
	return strings.Join([]string{
		"learning01: engineering sandbox",
		"- Build tiny projects",
		"- Test every iteration",
		"- Document what you learn",
	}, "\n")
}

// InitResult is the outcome of Init.
type InitResult struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

func (r InitResult) String() string {
	if !r.Created {
		return fmt.Sprintf("Workspace already initialized at %s", r.Path)
	}
	return fmt.Sprintf("Initialized learning workspace at %s", r.Path)
}

// Init creates an empty store. An existing store file is left untouched.
func (t *Tracker) Init() (InitResult, error) {
	if t.store.Exists() {
		return InitResult{Path: t.store.Path(), Created: false}, nil
	}
	if err := t.store.Save([]goal.Goal{}); err != nil {
		return InitResult{}, err
	}
	return InitResult{Path: t.store.Path(), Created: true}, nil
}

// AddResult is the outcome of AddGoal.
type AddResult struct {
	ID   int       `json:"id"`
	Goal goal.Goal `json:"goal"`
}

func (r AddResult) String() string {
	return fmt.Sprintf("Added goal #%d: %s", r.ID, r.Goal.Title)
}

// AddGoal appends a new todo goal.
func (t *Tracker) AddGoal(title string) (AddResult, error) {
	g, err := goal.New(title, t.clock())
	if err != nil {
		if errors.Is(err, goal.ErrEmptyTitle) {
			return AddResult{}, inputErrorf("Goal title cannot be empty.")
		}
		return AddResult{}, err
	}

	goals, err := t.store.Load()
	if err != nil {
		return AddResult{}, err
	}

	goals = append(goals, g)
	if err := t.store.Save(goals); err != nil {
		return AddResult{}, err
	}

	return AddResult{ID: len(goals), Goal: g}, nil
}

// ListResult is the outcome of ListGoals.
type ListResult struct {
	Filter goal.Status     `json:"filter,omitempty"`
	Total  int             `json:"total"`
	Goals  []goal.Numbered `json:"goals"`
}

func (r ListResult) String() string {
	if r.Total == 0 {
		return `No goals yet. Add one with: add-goal "your goal"`
	}
	if len(r.Goals) == 0 {
		return fmt.Sprintf("No goals with status '%s'.", r.Filter)
	}

	lines := []string{"Learning goals:"}
	for _, n := range r.Goals {
		lines = append(lines, fmt.Sprintf("%d. [%s] %s", n.ID, n.Goal.Status, n.Goal.Title))
	}
	return strings.Join(lines, "\n")
}

// ListGoals returns goals in insertion order. A non-empty filter restricts
// the listing to one status while keeping each goal's original number.
func (t *Tracker) ListGoals(filter string) (ListResult, error) {
	var status goal.Status
	if filter != "" {
		s, err := goal.ParseStatus(filter)
		if err != nil {
			return ListResult{}, invalidStatus(filter)
		}
		status = s
	}

	goals, err := t.store.Load()
	if err != nil {
		return ListResult{}, err
	}

	result := ListResult{Filter: status, Total: len(goals)}
	if status == "" || len(goals) == 0 {
		result.Goals = goal.Number(goals)
		return result, nil
	}

	matched, err := filterByStatus(goals, status)
	if err != nil {
		return ListResult{}, err
	}
	result.Goals = matched
	return result, nil
}

// filterByStatus runs the status query through an ephemeral index.
func filterByStatus(goals []goal.Goal, status goal.Status) ([]goal.Numbered, error) {
	idx, err := storage.OpenIndex()
	if err != nil {
		return nil, err
	}
	defer idx.Close()

	if _, err := idx.Rebuild(goals); err != nil {
		return nil, fmt.Errorf("indexing goals: %w", err)
	}
	matched, err := idx.ByStatus(status)
	if err != nil {
		return nil, err
	}
	if matched == nil {
		matched = []goal.Numbered{}
	}
	return matched, nil
}

// UpdateResult is the outcome of UpdateStatus.
type UpdateResult struct {
	ID       int         `json:"id"`
	Title    string      `json:"title"`
	Previous goal.Status `json:"previous"`
	Current  goal.Status `json:"current"`
}

func (r UpdateResult) String() string {
	return fmt.Sprintf("Updated goal #%d: [%s] -> [%s] %s", r.ID, r.Previous, r.Current, r.Title)
}

// UpdateStatus sets the status of one goal.
// Checks run in order: empty store, status value, then id range.
func (t *Tracker) UpdateStatus(id int, status string) (UpdateResult, error) {
	goals, err := t.store.Load()
	if err != nil {
		return UpdateResult{}, err
	}
	if len(goals) == 0 {
		return UpdateResult{}, inputErrorf("No goals found. Add a goal first.")
	}

	next, err := goal.ParseStatus(status)
	if err != nil {
		return UpdateResult{}, invalidStatus(status)
	}
	if !goal.InRange(id, len(goals)) {
		return UpdateResult{}, inputErrorf("Invalid goal id %d. Use a value between 1 and %d.", id, len(goals))
	}

	g := &goals[id-1]
	previous := g.Status
	g.Status = next
	if err := t.store.Save(goals); err != nil {
		return UpdateResult{}, err
	}

	return UpdateResult{ID: id, Title: g.Title, Previous: previous, Current: next}, nil
}

func invalidStatus(s string) error {
	return inputErrorf("Invalid status '%s'. Use one of: %s.", s, goal.ValidStatusList())
}
