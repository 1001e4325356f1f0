package fs

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp")
	fs := New()
	dir, err := fs.UserCacheDir()
	assert.NoError(t, err)
	assert.NotEmpty(t, dir)
}

func TestUserHomeDir(t *testing.T) {
	t.Setenv("HOME", "/tmp/home")
	fs := New()
	dir, err := fs.UserHomeDir()
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/home", dir)
}

func TestMkdirAll(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	err := fs.MkdirAll(path.Join(dir, "foo/bar"))
	assert.NoError(t, err)
	assert.DirExists(t, path.Join(dir, "foo/bar"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	filePath := path.Join(dir, "pglt")
	require.NoError(t, os.WriteFile(filePath, []byte("bin"), 0o755))
	fs := New()

	t.Run("exists", func(t *testing.T) {
		result, err := fs.FileExists(filePath)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("symlink to file", func(t *testing.T) {
		link := path.Join(dir, "link")
		require.NoError(t, os.Symlink(filePath, link))
		result, err := fs.FileExists(link)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("directory", func(t *testing.T) {
		result, err := fs.FileExists(dir)
		assert.NoError(t, err)
		assert.False(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		result, err := fs.FileExists(path.Join(dir, "missing"))
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestEvalSymlinks(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	target := path.Join(dir, "real")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := path.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	resolved, err := New().EvalSymlinks(link)
	assert.NoError(t, err)
	assert.Equal(t, target, resolved)
}

func TestWriteRenameRemove(t *testing.T) {
	dir := t.TempDir()
	fs := New()

	tmp, err := fs.TempFile(dir, "download-*")
	require.NoError(t, err)
	require.NoError(t, tmp.Close())

	require.NoError(t, fs.WriteFile(tmp.Name(), []byte("contents"), 0o644))
	require.NoError(t, fs.Chmod(tmp.Name(), 0o755))

	dest := path.Join(dir, "dest")
	require.NoError(t, fs.Rename(tmp.Name(), dest))

	data, err := fs.ReadFile(dest)
	assert.NoError(t, err)
	assert.Equal(t, "contents", string(data))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	assert.NoError(t, fs.Remove(dest))
	_, err = os.Stat(dest)
	assert.True(t, os.IsNotExist(err))

	nested := path.Join(dir, "a/b")
	require.NoError(t, fs.MkdirAll(nested))
	assert.NoError(t, fs.RemoveAll(path.Join(dir, "a")))
	assert.NoDirExists(t, nested)
}

func TestContainsFile(t *testing.T) {
	fs := New()

	tests := []struct {
		name     string
		files    []string
		skipDirs []string
		want     bool
	}{
		{
			name:  "at root",
			files: []string{"package.json"},
			want:  true,
		},
		{
			name:  "nested",
			files: []string{"apps/web/package.json"},
			want:  true,
		},
		{
			name:  "absent",
			files: []string{"pglt.toml", "src/schema.sql"},
			want:  false,
		},
		{
			name:     "only in skipped directory",
			files:    []string{"node_modules/foo/package.json", ".git/package.json"},
			skipDirs: []string{"node_modules", ".git"},
			want:     false,
		},
		{
			name:  "skipped directory not configured",
			files: []string{"node_modules/foo/package.json"},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, f := range tt.files {
				p := path.Join(root, f)
				require.NoError(t, os.MkdirAll(path.Dir(p), 0o755))
				require.NoError(t, os.WriteFile(p, []byte("{}"), 0o644))
			}

			got, err := fs.ContainsFile(root, "package.json", tt.skipDirs...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("missing root", func(t *testing.T) {
		_, err := fs.ContainsFile(path.Join(t.TempDir(), "missing"), "package.json")
		assert.Error(t, err)
	})
}
