package config

// FileTOML and FileYAML are the recognized configuration file names, in lookup order.
const (
	FileTOML = "babblewitz.config.toml"
	FileYAML = "babblewitz.config.yaml"
)

// ConfigFile is the on-disk shape of an implementation configuration.
type ConfigFile struct {
	Name        string             `toml:"name" yaml:"name"`
	Description string             `toml:"description" yaml:"description"`
	ProjectType string             `toml:"project-type" yaml:"project-type"`
	Execution   *ExecutionDTO      `toml:"execution" yaml:"execution"`
	Tasks       map[string]TaskDTO `toml:"tasks" yaml:"tasks"`
}

// ExecutionDTO overrides the commands derived from the project type.
type ExecutionDTO struct {
	BuildCommand string `toml:"build-command" yaml:"build-command"`
	RunCommand   string `toml:"run-command" yaml:"run-command"`
}

// TaskDTO lists the games an implementation supports for one task.
type TaskDTO struct {
	Games []string `toml:"games" yaml:"games"`
}
