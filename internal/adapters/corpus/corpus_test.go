package corpus_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/babblewitz/internal/adapters/corpus"
	"go.trai.ch/babblewitz/internal/adapters/fs"
	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, root, rel string, content []byte) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(2)

	root := t.TempDir()
	writeFile(t, root, "a.txt", []byte("# @babblewitz:games: all\nfoo=bar"))
	writeFile(t, root, "nested/b.txt", []byte("# @babblewitz:games: vic3 ck3\r\nfoo=bar"))
	writeFile(t, root, "loose.txt", []byte("foo=bar\n"))
	writeFile(t, root, "typo.txt", []byte("# @babblewitz:games: eu5\n"))

	loader := corpus.NewLoader(fs.NewWalker(), fs.NewHasher(), log)
	c, err := loader.Load(root)
	require.NoError(t, err)

	eu4 := c.Index.EntriesFor(domain.GameEU4)
	require.Len(t, eu4, 1)
	assert.Equal(t, "a.txt", eu4[0].Path)
	assert.Equal(t, "foo=bar", string(eu4[0].Content))
	assert.Len(t, eu4[0].Digest, 16)

	ck3 := c.Index.EntriesFor(domain.GameCK3)
	require.Len(t, ck3, 2)
	assert.Equal(t, "a.txt", ck3[0].Path)
	assert.Equal(t, "nested/b.txt", ck3[1].Path)

	require.Len(t, c.Rejected, 2)
	assert.Equal(t, "loose.txt", c.Rejected[0].Path)
	assert.Equal(t, "typo.txt", c.Rejected[1].Path)
	for _, g := range domain.AllGames() {
		for _, e := range c.Index.EntriesFor(g) {
			assert.NotEqual(t, "loose.txt", e.Path)
			assert.NotEqual(t, "typo.txt", e.Path)
		}
	}
}

func TestLoader_LoadMissingRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := corpus.NewLoader(fs.NewWalker(), fs.NewHasher(), mocks.NewMockLogger(ctrl))

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCorpusLoadFailed))
}

func zipped(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	_, err := w.Create("meta/")
	require.NoError(t, err)
	f, err := w.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestSaveSource_ListAndRead(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "eu4/autosave.zip", zipped(t, "autosave.eu4", []byte("EU4txt\ndate=1444.11.11")))
	writeFile(t, root, "stellaris/test.sav", []byte("plain save"))
	writeFile(t, root, "README.md", []byte("not a save"))
	writeFile(t, root, "unknown/file.bin", []byte("ignored"))

	src := corpus.NewSaveSource(fs.NewWalker(), fs.NewHasher())
	files, err := src.List(root)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "eu4/autosave.zip", files[0].Name)
	assert.Equal(t, domain.GameEU4, files[0].Game)
	assert.Equal(t, "stellaris/test.sav", files[1].Name)
	assert.Equal(t, domain.GameStellaris, files[1].Game)
	assert.Equal(t, fs.NewHasher().Sum([]byte("plain save")), files[1].Digest)

	data, err := src.Read(files[0])
	require.NoError(t, err)
	assert.Equal(t, "EU4txt\ndate=1444.11.11", string(data))

	data, err = src.Read(files[1])
	require.NoError(t, err)
	assert.Equal(t, "plain save", string(data))
}

func TestSaveSource_ReadMissing(t *testing.T) {
	src := corpus.NewSaveSource(fs.NewWalker(), fs.NewHasher())
	_, err := src.Read(domain.SaveFile{Path: filepath.Join(t.TempDir(), "eu4", "gone.zip"), Game: domain.GameEU4})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSaveFileReadFailed))
}

func TestSaveSource_ReadEmptyArchive(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, zip.NewWriter(&buf).Close())
	path := writeFile(t, t.TempDir(), "vic3/empty.zip", buf.Bytes())

	_, err := corpus.NewSaveSource(fs.NewWalker(), fs.NewHasher()).Read(domain.SaveFile{Path: path, Game: domain.GameVic3})
	assert.ErrorContains(t, err, "archive has no file entries")
}

// corrupted returns a stored (uncompressed) archive whose payload no longer
// matches its checksum.
func corrupted(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw := buf.Bytes()
	i := bytes.Index(raw, content)
	require.GreaterOrEqual(t, i, 0)
	raw[i] ^= 0xff
	return raw
}

func TestSaveSource_CorruptArchive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "eu4/a.eu4", []byte("EU4txt"))
	writeFile(t, root, "eu4/b.zip", corrupted(t, "b.eu4", []byte("EU4txt\ndate=1444.11.11")))

	src := corpus.NewSaveSource(fs.NewWalker(), fs.NewHasher())
	files, err := src.List(root)
	require.NoError(t, err)
	require.Len(t, files, 2)

	_, err = src.Read(files[1])
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSaveFileReadFailed))

	data, err := src.Read(files[0])
	require.NoError(t, err)
	assert.Equal(t, "EU4txt", string(data))
}
