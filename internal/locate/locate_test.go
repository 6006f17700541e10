package locate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
}

func TestFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "rest:spike[1]")
	touch(t, filepath.Join(dir, "results_rest:spike_run_2.json"))
	touch(t, filepath.Join(dir, "results_rest:spike_run_1.json"))
	touch(t, filepath.Join(dir, "average_k6_metrics.json"))
	touch(t, filepath.Join(dir, "run_1_order_cloudwatch_logs.json"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "results_dir_run_3.json"), 0755))

	files, err := Files(dir, "results_*_run_*.json")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "results_rest:spike_run_1.json"),
		filepath.Join(dir, "results_rest:spike_run_2.json"),
	}, files)
}

func TestFiles_NoMatches(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "notes.txt"))

	files, err := Files(dir, "run_*_*_cloudwatch_logs.json")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFiles_Errors(t *testing.T) {
	_, err := Files(t.TempDir(), "run_[")
	assert.Error(t, err)

	_, err = Files(filepath.Join(t.TempDir(), "missing"), "*.json")
	assert.Error(t, err)
}

func TestRequireDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.json")
	touch(t, file)

	assert.NoError(t, RequireDir(dir))
	assert.ErrorIs(t, RequireDir(file), ErrNotDirectory)
	assert.ErrorIs(t, RequireDir(filepath.Join(dir, "missing")), ErrNotDirectory)
	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
}

func TestSubDirs(t *testing.T) {
	base := t.TempDir()
	for _, name := range []string{"rest:spike", "grpc:load", "scratch"} {
		require.NoError(t, os.Mkdir(filepath.Join(base, name), 0755))
	}
	touch(t, filepath.Join(base, "rest:notes.json"))

	dirs, err := SubDirs(base, ":")
	require.NoError(t, err)
	assert.Equal(t, []string{"grpc:load", "rest:spike"}, dirs)

	all, err := SubDirs(base, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
