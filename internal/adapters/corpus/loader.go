// Package corpus loads the categorized game corpus and the performance save files.
package corpus

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/babblewitz/internal/adapters/fs"
	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CorpusLoader = (*Loader)(nil)

// Loader implements ports.CorpusLoader over a directory tree.
type Loader struct {
	walker *fs.Walker
	hasher *fs.Hasher
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(walker *fs.Walker, hasher *fs.Hasher, logger ports.Logger) *Loader {
	return &Loader{walker: walker, hasher: hasher, logger: logger}
}

// Load reads every file below root. Files without a valid directive, or that
// cannot be read, are rejected and logged; the rest are indexed.
func (l *Loader) Load(root string) (*domain.Corpus, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, loadFailed(zerr.Wrap(err, "failed to stat corpus directory"), root)
	}
	if !info.IsDir() {
		return nil, loadFailed(zerr.New("corpus path is not a directory"), root)
	}

	var (
		entries  []*domain.CorpusEntry
		rejected []domain.RejectedFile
	)
	for path, err := range l.walker.WalkFiles(root) {
		if err != nil {
			return nil, loadFailed(zerr.Wrap(err, "failed to walk corpus directory"), root)
		}
		rel := relativeName(root, path)

		entry, err := l.loadFile(path, rel)
		if err != nil {
			l.logger.Warn("rejecting corpus file " + rel + ": " + err.Error())
			rejected = append(rejected, domain.RejectedFile{Path: rel, Reason: err})
			continue
		}
		entries = append(entries, entry)
	}

	return &domain.Corpus{
		Index:    domain.BuildIndex(entries),
		Rejected: rejected,
	}, nil
}

func (l *Loader) loadFile(path, rel string) (*domain.CorpusEntry, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // path comes from walking the corpus root
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read corpus file")
	}
	games, body, err := domain.ParseCorpusContent(raw)
	if err != nil {
		return nil, err
	}
	return &domain.CorpusEntry{
		Path:    rel,
		Content: body,
		Games:   games,
		Digest:  l.hasher.Sum(raw),
	}, nil
}

func loadFailed(err error, root string) error {
	return errors.Join(domain.ErrCorpusLoadFailed, zerr.With(err, "path", root))
}

func relativeName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
