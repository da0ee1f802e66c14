package domain

import (
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// ProjectType is the toolchain an implementation is built with.
type ProjectType string

const (
	// ProjectRust builds with cargo.
	ProjectRust ProjectType = "rust"
	// ProjectGradle builds with the gradle wrapper.
	ProjectGradle ProjectType = "gradle"
	// ProjectNodejs installs with npm and runs with node.
	ProjectNodejs ProjectType = "nodejs"
	// ProjectGo builds with the go toolchain.
	ProjectGo ProjectType = "go"
	// ProjectMake builds with make.
	ProjectMake ProjectType = "make"
)

// CommandSet holds the command lines used to build and run an implementation.
// An empty Build means the implementation has no build step.
type CommandSet struct {
	Build string
	Run   string
}

// ParseProjectType resolves a project type identifier.
func ParseProjectType(s string) (ProjectType, error) {
	switch p := ProjectType(strings.ToLower(s)); p {
	case ProjectRust, ProjectGradle, ProjectNodejs, ProjectGo, ProjectMake:
		return p, nil
	default:
		return "", zerr.With(ErrUnknownProjectType, "project_type", s)
	}
}

// DefaultCommands returns the commands derived from the project type for the
// current operating system.
func (p ProjectType) DefaultCommands() CommandSet {
	return p.CommandsFor(runtime.GOOS)
}

// CommandsFor returns the commands derived from the project type for goos.
func (p ProjectType) CommandsFor(goos string) CommandSet {
	switch p {
	case ProjectRust:
		return CommandSet{Build: "cargo build --release", Run: "cargo run --release --quiet --"}
	case ProjectGradle:
		if goos == "windows" {
			return CommandSet{Build: "gradlew.bat build", Run: "gradlew.bat run"}
		}
		return CommandSet{Build: "./gradlew build", Run: "./gradlew run"}
	case ProjectNodejs:
		return CommandSet{Build: "npm install", Run: "node main.js"}
	case ProjectGo:
		return CommandSet{Build: "go build", Run: "go run"}
	case ProjectMake:
		return CommandSet{Build: "make", Run: "make run"}
	default:
		return CommandSet{}
	}
}

// String returns the identifier of the project type.
func (p ProjectType) String() string {
	return string(p)
}
