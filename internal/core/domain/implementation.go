package domain

import (
	"maps"
	"slices"
	"strings"
)

// Implementation is one parser under test, loaded from its configuration file.
// It is immutable after load.
type Implementation struct {
	// Name is the directory name the implementation was discovered under.
	Name string
	// DisplayName is the name declared in the configuration file.
	DisplayName string
	Description string
	// Dir is the absolute implementation directory, used as the working
	// directory for build and run commands.
	Dir         string
	ProjectType ProjectType
	// BuildOverride and RunOverride replace the commands derived from the
	// project type when non-empty.
	BuildOverride string
	RunOverride   string
	// Tasks maps a task to the games the implementation supports for it.
	// Every game list is non-empty.
	Tasks map[TaskName][]Game
}

// Commands resolves the effective build and run commands.
func (i *Implementation) Commands() CommandSet {
	cmds := i.ProjectType.DefaultCommands()
	if i.BuildOverride != "" {
		cmds.Build = i.BuildOverride
	}
	if i.RunOverride != "" {
		cmds.Run = i.RunOverride
	}
	return cmds
}

// SupportsTask reports whether the implementation declares the task.
func (i *Implementation) SupportsTask(task TaskName) bool {
	return len(i.Tasks[task]) > 0
}

// GamesFor returns the games declared for the task, in declaration order.
func (i *Implementation) GamesFor(task TaskName) []Game {
	return slices.Clone(i.Tasks[task])
}

// TaskNames returns the declared task names in sorted order.
func (i *Implementation) TaskNames() []TaskName {
	return slices.Sorted(maps.Keys(i.Tasks))
}

// SortImplementations orders implementations by name.
func SortImplementations(impls []*Implementation) {
	slices.SortFunc(impls, func(a, b *Implementation) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// InvalidImplementation records an implementation directory whose configuration
// was rejected. It is reported but never built or run.
type InvalidImplementation struct {
	Name string
	Dir  string
	Err  error
}
