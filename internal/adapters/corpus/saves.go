package corpus

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/babblewitz/internal/adapters/fs"
	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SaveFileSource = (*SaveSource)(nil)

// SaveSource implements ports.SaveFileSource. A save file belongs to the game
// named by its parent directory; files elsewhere are ignored.
type SaveSource struct {
	walker *fs.Walker
	hasher *fs.Hasher
}

// NewSaveSource creates a new SaveSource.
func NewSaveSource(walker *fs.Walker, hasher *fs.Hasher) *SaveSource {
	return &SaveSource{walker: walker, hasher: hasher}
}

// List returns the save files below root ordered by name. Only a failure to
// walk root is an error.
func (s *SaveSource) List(root string) ([]domain.SaveFile, error) {
	var files []domain.SaveFile
	for path, err := range s.walker.WalkFiles(root) {
		if err != nil {
			return nil, errors.Join(domain.ErrSaveFileReadFailed, zerr.With(err, "path", root))
		}
		game, err := domain.ParseGame(filepath.Base(filepath.Dir(path)))
		if err != nil {
			continue
		}
		// An unhashable file keeps an empty digest; Read reports the failure.
		digest, _ := s.hasher.SumFile(path)
		files = append(files, domain.SaveFile{
			Path:   path,
			Name:   relativeName(root, path),
			Game:   game,
			Digest: digest,
		})
	}
	slices.SortFunc(files, func(a, b domain.SaveFile) int {
		return strings.Compare(a.Name, b.Name)
	})
	return files, nil
}

// Read returns the payload of sf. Zip archives yield their first file entry;
// anything else is returned as stored.
func (s *SaveSource) Read(sf domain.SaveFile) ([]byte, error) {
	archive, err := zip.OpenReader(sf.Path)
	if err != nil {
		data, err := os.ReadFile(sf.Path)
		if err != nil {
			return nil, readFailed(err, sf)
		}
		return data, nil
	}
	defer archive.Close() //nolint:errcheck // read-only archive

	for _, f := range archive.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, readFailed(zerr.With(err, "entry", f.Name), sf)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, readFailed(zerr.With(err, "entry", f.Name), sf)
		}
		return data, nil
	}
	return nil, readFailed(zerr.New("archive has no file entries"), sf)
}

func readFailed(err error, sf domain.SaveFile) error {
	return errors.Join(domain.ErrSaveFileReadFailed, zerr.With(err, "path", sf.Path))
}
