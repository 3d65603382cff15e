package pathutil_test

import (
	"io/fs"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/filemonitor/pkg/fmerrors"
	"github.com/MacroPower/filemonitor/pkg/pathutil"
)

var modTime = time.Date(2024, time.March, 2, 10, 30, 0, 0, time.UTC)

func newPopulatedResolver(t *testing.T) *pathutil.Resolver {
	t.Helper()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/opt/app/data", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/opt/app/data/file.txt", []byte("x"), 0o644))
	require.NoError(t, fsys.Chtimes("/opt/app/data/file.txt", modTime, modTime))

	r, err := pathutil.NewResolver(baseDir, pathutil.WithFs(fsys))
	require.NoError(t, err)

	return r
}

func TestExists(t *testing.T) {
	t.Parallel()

	r := newPopulatedResolver(t)

	ok, err := r.Exists("data/file.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Exists("[RutaActual][DS]data")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Exists("missing.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsDirectoryAndIsFile(t *testing.T) {
	t.Parallel()

	r := newPopulatedResolver(t)

	isDir, err := r.IsDirectory("data")
	require.NoError(t, err)
	assert.True(t, isDir)

	isFile, err := r.IsFile("data")
	require.NoError(t, err)
	assert.False(t, isFile)

	isDir, err = r.IsDirectory("data/file.txt")
	require.NoError(t, err)
	assert.False(t, isDir)

	isFile, err = r.IsFile("data/file.txt")
	require.NoError(t, err)
	assert.True(t, isFile)

	_, err = r.IsDirectory("missing")
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, fmerrors.ErrFileNotFound)

	_, err = r.IsFile("missing")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestEnsureFileExists(t *testing.T) {
	t.Parallel()

	r := newPopulatedResolver(t)

	require.NoError(t, r.EnsureFileExists("data/file.txt"))

	err := r.EnsureFileExists("data/../missing.txt")
	require.ErrorIs(t, err, fmerrors.ErrFileNotFound)

	var fnf *fmerrors.FileNotFoundError
	require.ErrorAs(t, err, &fnf)
	assert.Equal(t, "/opt/app/missing.txt", fnf.Path)
}

func TestResolveExistingFilePath(t *testing.T) {
	t.Parallel()

	r := newPopulatedResolver(t)

	t.Run("existing file", func(t *testing.T) {
		t.Parallel()
		p, err := r.ResolveExistingFilePath("data/[FileName]", "file.txt")
		require.NoError(t, err)
		assert.Equal(t, "/opt/app/data/file.txt", p)
	})
	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		p, err := r.ResolveExistingFilePath("[Auto]", "file.txt")
		require.ErrorIs(t, err, fmerrors.ErrFileNotFound)
		assert.Contains(t, err.Error(), "/opt/app/file.txt")
		assert.Empty(t, p)
	})
	t.Run("directory is not a file", func(t *testing.T) {
		t.Parallel()
		_, err := r.ResolveExistingFilePath("data", "file.txt")
		require.ErrorIs(t, err, fmerrors.ErrFileNotFound)
	})
}

func TestLastModifiedTime(t *testing.T) {
	t.Parallel()

	r := newPopulatedResolver(t)

	got, err := r.LastModifiedTime("data/file.txt")
	require.NoError(t, err)
	assert.True(t, modTime.Equal(got), "got %s", got)

	_, err = r.LastModifiedTime("missing.txt")
	require.ErrorIs(t, err, fmerrors.ErrFileNotFound)
}

func TestWasModifiedSince(t *testing.T) {
	t.Parallel()

	r := newPopulatedResolver(t)

	tcs := map[string]struct {
		since time.Time
		want  bool
	}{
		"before":   {since: modTime.Add(-time.Hour), want: true},
		"at":       {since: modTime, want: false},
		"after":    {since: modTime.Add(time.Hour), want: false},
		"zero":     {since: time.Time{}, want: true},
		"just now": {since: modTime.Add(-time.Nanosecond), want: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := r.WasModifiedSince(tc.since, "data/file.txt")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := r.WasModifiedSince(modTime, "missing.txt")
	require.ErrorIs(t, err, fmerrors.ErrFileNotFound)
}
