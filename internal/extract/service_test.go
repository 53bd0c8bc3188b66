package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanadolps/Comic-Encoder/internal/domain"
	"github.com/thanadolps/Comic-Encoder/internal/observability"
)

func writeComicArchive(t *testing.T, path string, names []string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for _, name := range names {
		ew, err := w.Create(name)
		require.NoError(t, err)
		_, err = ew.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "comic.txt")
	require.NoError(t, os.WriteFile(input, []byte("text"), 0o644))

	s := NewService(observability.Nop())
	_, err := s.Decode(Options{Input: input, Output: dir})
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUnsupportedFormat, domain.ErrorTypeOf(err))
	assert.Contains(t, err.Error(), "txt")

	// No output was produced.
	files, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, files, 1) // only the input itself
}

func TestDecodeMissingExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "comic")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0o644))

	s := NewService(observability.Nop())
	_, err := s.Decode(Options{Input: input, Output: dir})
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUnsupportedFormat, domain.ErrorTypeOf(err))
}

func TestDecodeInputValidation(t *testing.T) {
	dir := t.TempDir()
	s := NewService(observability.Nop())

	_, err := s.Decode(Options{Input: filepath.Join(dir, "missing.cbz"), Output: dir})
	assert.Equal(t, domain.ErrorTypeInputNotFound, domain.ErrorTypeOf(err))

	_, err = s.Decode(Options{Input: dir, Output: dir})
	assert.Equal(t, domain.ErrorTypeInputIsDirectory, domain.ErrorTypeOf(err))
}

func TestDecodeOutputValidation(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "comic.cbz")
	writeComicArchive(t, input, []string{"1.png"})

	s := NewService(observability.Nop())

	missing := filepath.Join(dir, "nope")
	_, err := s.Decode(Options{Input: input, Output: missing})
	assert.Equal(t, domain.ErrorTypeOutputDirMissing, domain.ErrorTypeOf(err))

	// With CreateOutputDir the same request succeeds.
	paths, err := s.Decode(Options{Input: input, Output: missing, CreateOutputDir: true})
	require.NoError(t, err)
	assert.Len(t, paths, 1)

	// Output naming a regular file is rejected.
	file := filepath.Join(dir, "file.out")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = s.Decode(Options{Input: input, Output: file})
	assert.Equal(t, domain.ErrorTypeOutputDirIsFile, domain.ErrorTypeOf(err))
}

func TestDecodeDefaultOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "volume1.cbz")
	writeComicArchive(t, input, []string{"a.png", "b.png"})

	s := NewService(observability.Nop())
	paths, err := s.Decode(Options{Input: input})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	// Pages land in <input without extension>/.
	assert.Equal(t, filepath.Join(dir, "volume1", "1.png"), paths[0])
	assert.Equal(t, filepath.Join(dir, "volume1", "2.png"), paths[1])
}

func TestDecodeArchiveEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "comic.zip")
	out := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(out, 0o755))

	writeComicArchive(t, input, []string{"b.png", "a.png", "c10.png", "c2.png", "notes.txt"})

	s := NewService(observability.Nop())
	paths, err := s.Decode(Options{
		Input:             input,
		Output:            out,
		ExtractImagesOnly: true,
	})
	require.NoError(t, err)

	want := []string{"1.png", "2.png", "3.png", "4.png"}
	require.Len(t, paths, len(want))
	for i, name := range want {
		assert.Equal(t, filepath.Join(out, name), paths[i])
	}

	// Natural order: a, b, c2, c10.
	for i, original := range []string{"a.png", "b.png", "c2.png", "c10.png"} {
		data, err := os.ReadFile(paths[i])
		require.NoError(t, err)
		assert.Equal(t, original, string(data))
	}
}

func TestDecodeCaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "comic.CBZ")
	out := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(out, 0o755))

	writeComicArchive(t, input, []string{"p.png"})

	s := NewService(observability.Nop())
	paths, err := s.Decode(Options{Input: input, Output: out})
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}
