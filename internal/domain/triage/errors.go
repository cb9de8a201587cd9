package triage

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when an operation references an identifier that is
// not present in the queue store.
var ErrNotFound = errors.New("patient not found")

// ErrDuplicateID is returned when an insert collides with an existing
// identifier. It indicates a generator bug upstream and is reported rather
// than silently overwriting the existing record.
var ErrDuplicateID = errors.New("duplicate patient identifier")

// InvalidTransitionError reports a lifecycle move that violates the
// monotonic ordering waiting < in-progress < completed. It carries both
// states so the caller can reconcile its view.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// ValidationError reports caller-recoverable intake problems, one message
// per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
