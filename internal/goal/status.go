package goal

import (
	"errors"
	"sort"
	"strings"
)

// Status is the lifecycle state of a goal.
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// ErrInvalidStatus is returned when a status string is not one of the known values.
var ErrInvalidStatus = errors.New("invalid status")

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	default:
		return false
	}
}

// ParseStatus parses a string into a Status. Matching is exact.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// ValidStatusList returns the valid statuses sorted alphabetically and comma-joined,
// e.g. "done, doing, todo".
func ValidStatusList() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
