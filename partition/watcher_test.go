package partition

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytom/timepart/datefmt"
)

func TestWatcher(t *testing.T) {
	dir, err := ioutil.TempDir("", "partition-watch")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	w, err := NewWatcher(datefmt.New("%Y%M%D", nil), dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "scratch"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "20180119"), 0755))

	select {
	case p := <-w.Events():
		assert.Equal(t, "20180119", p.Label)
		assert.Equal(t, time.Date(2018, 1, 19, 0, 0, 0, 0, time.UTC), p.Time)
	case err := <-w.Errors():
		t.Fatal(err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for partition event")
	}
}

func TestWatcherClose(t *testing.T) {
	dir, err := ioutil.TempDir("", "partition-watch")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	w, err := NewWatcher(datefmt.New("%Y%M%D", nil), dir)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events()
	assert.False(t, ok)
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(datefmt.New("%Y", nil), filepath.Join(os.TempDir(), "partition-watch-missing-dir"))
	assert.Error(t, err)
}
