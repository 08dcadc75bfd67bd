package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)
	return ls
}

func TestNewLocalStorageCreatesKindDirectories(t *testing.T) {
	ls := newTestStorage(t)

	for _, dir := range []string{DirFiles, DirImages} {
		info, err := os.Stat(filepath.Join(ls.BasePath(), dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveAndDelete(t *testing.T) {
	ls := newTestStorage(t)

	relPath, err := ls.Save(strings.NewReader("%PDF-1.4"), "Syllabus.PDF", DirFiles)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "files/"))
	assert.True(t, strings.HasSuffix(relPath, ".pdf"))

	data, err := os.ReadFile(filepath.Join(ls.BasePath(), filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, ls.Delete(relPath))
	_, err = os.Stat(filepath.Join(ls.BasePath(), filepath.FromSlash(relPath)))
	assert.True(t, os.IsNotExist(err))

	// second delete is a no-op
	assert.NoError(t, ls.Delete(relPath))
}

func TestSaveRejectsUnknownDirectory(t *testing.T) {
	ls := newTestStorage(t)

	_, err := ls.Save(strings.NewReader("x"), "a.txt", "videos")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestDeleteRejectsEscapingPaths(t *testing.T) {
	ls := newTestStorage(t)

	assert.ErrorIs(t, ls.Delete("../etc/passwd"), ErrInvalidPath)
	assert.ErrorIs(t, ls.Delete("files"), ErrInvalidPath)
	assert.ErrorIs(t, ls.Delete("other/x.png"), ErrInvalidPath)
}

func TestURL(t *testing.T) {
	ls := newTestStorage(t)

	assert.Equal(t, "http://localhost:8080/uploads/images/a.png", ls.URL("images/a.png"))
	assert.Equal(t, "", ls.URL(""))
}
