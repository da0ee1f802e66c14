// Package config loads implementation configurations from disk.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Registry implements ports.ImplementationRegistry over a directory tree where
// every subdirectory is one implementation.
type Registry struct {
	logger ports.Logger
}

// NewRegistry creates a new Registry.
func NewRegistry(logger ports.Logger) *Registry {
	return &Registry{logger: logger}
}

// Discover loads every implementation directory under root, sorted by name.
func (r *Registry) Discover(root string) (ports.Discovery, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return ports.Discovery{}, zerr.With(zerr.Wrap(err, "failed to read implementations directory"), "path", root)
	}

	var discovery ports.Discovery
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dir := filepath.Join(root, entry.Name())

		impl, err := r.Load(dir)
		if err != nil {
			if errors.Is(err, domain.ErrConfigParseFailed) {
				return ports.Discovery{}, err
			}
			r.logger.Warn("skipping implementation " + entry.Name() + ": " + err.Error())
			discovery.Invalid = append(discovery.Invalid, domain.InvalidImplementation{
				Name: entry.Name(),
				Dir:  dir,
				Err:  err,
			})
			continue
		}
		discovery.Implementations = append(discovery.Implementations, impl)
	}

	domain.SortImplementations(discovery.Implementations)
	return discovery, nil
}

// Load reads and validates the configuration in dir. A configuration that
// cannot be decoded is reported with domain.ErrConfigParseFailed; one that
// decodes but breaks a rule is reported with domain.ErrConfigInvalid.
func (r *Registry) Load(dir string) (*domain.Implementation, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve implementation directory")
	}

	path, data, err := readConfig(absDir)
	if err != nil {
		return nil, err
	}

	cfg, err := decode(path, data)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}

	impl, err := toImplementation(filepath.Base(absDir), absDir, cfg)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigInvalid, zerr.With(err, "path", path))
	}
	return impl, nil
}

func readConfig(dir string) (string, []byte, error) {
	for _, name := range []string{FileTOML, FileYAML} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path) //nolint:gosec // path is built from the implementations directory
		if err == nil {
			return path, data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
		}
	}
	return "", nil, zerr.With(domain.ErrConfigNotFound, "dir", dir)
}

func decode(path string, data []byte) (*ConfigFile, error) {
	var cfg ConfigFile
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return nil, zerr.Wrap(err, "invalid TOML")
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, zerr.Wrap(err, "invalid YAML")
		}
	}
	return &cfg, nil
}

func toImplementation(name, dir string, cfg *ConfigFile) (*domain.Implementation, error) {
	displayName := strings.TrimSpace(cfg.Name)
	if displayName == "" {
		return nil, zerr.With(zerr.New("name is required"), "field", "name")
	}

	projectType, err := domain.ParseProjectType(cfg.ProjectType)
	if err != nil {
		return nil, zerr.With(err, "field", "project-type")
	}

	if len(cfg.Tasks) == 0 {
		return nil, zerr.With(zerr.New("at least one task is required"), "field", "tasks")
	}

	tasks := make(map[domain.TaskName][]domain.Game, len(cfg.Tasks))
	for rawTask, dto := range cfg.Tasks {
		task, err := domain.ParseTaskName(rawTask)
		if err != nil {
			return nil, zerr.With(err, "field", "tasks")
		}
		games, err := parseGames(dto.Games)
		if err != nil {
			return nil, zerr.With(err, "task", rawTask)
		}
		tasks[task] = games
	}

	impl := &domain.Implementation{
		Name:        name,
		DisplayName: displayName,
		Description: strings.TrimSpace(cfg.Description),
		Dir:         dir,
		ProjectType: projectType,
		Tasks:       tasks,
	}
	if cfg.Execution != nil {
		impl.BuildOverride = strings.TrimSpace(cfg.Execution.BuildCommand)
		impl.RunOverride = strings.TrimSpace(cfg.Execution.RunCommand)
	}
	return impl, nil
}

// parseGames resolves a non-empty game list, dropping duplicates.
func parseGames(raw []string) ([]domain.Game, error) {
	if len(raw) == 0 {
		return nil, zerr.New("games list must not be empty")
	}
	games := make([]domain.Game, 0, len(raw))
	for _, s := range raw {
		g, err := domain.ParseGame(s)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(games, g) {
			games = append(games, g)
		}
	}
	return games, nil
}
