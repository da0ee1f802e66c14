package domain

import (
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// TaskName identifies an operation an implementation can perform.
type TaskName string

const (
	// TaskCanParse is the built-in conformance task. Line 2 of the output is the
	// number of tokens encountered.
	TaskCanParse TaskName = "can-parse"
	// TaskDeserialization is the built-in performance task run against save files.
	TaskDeserialization TaskName = "deserialization"
)

// TaskKind decides which corpus a task draws its inputs from and how its
// invocations are scheduled.
type TaskKind int

const (
	// KindConformance tasks run over the categorized game corpus. Invocations may run concurrently.
	KindConformance TaskKind = iota
	// KindPerformance tasks run over save files. Invocations run strictly one at a time.
	KindPerformance
)

// String returns the report label of the kind.
func (k TaskKind) String() string {
	if k == KindPerformance {
		return "performance"
	}
	return "conformance"
}

// ParseTaskName validates a task name. Custom names are accepted as long as they
// are non-empty and contain no whitespace.
func ParseTaskName(s string) (TaskName, error) {
	if s == "" {
		return "", zerr.With(ErrInvalidTaskName, "reason", "empty")
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "", zerr.With(ErrInvalidTaskName, "task", s)
	}
	return TaskName(s), nil
}

// Kind reports how the task is driven. Only the deserialization task is a
// performance task; every custom task is treated as a conformance task.
func (t TaskName) Kind() TaskKind {
	if t == TaskDeserialization {
		return KindPerformance
	}
	return KindConformance
}

// String returns the name passed to implementations via --task.
func (t TaskName) String() string {
	return string(t)
}
