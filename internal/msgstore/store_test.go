package msgstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K4R-IAI/UROSActionLib/internal/ioerr"
	"github.com/K4R-IAI/UROSActionLib/internal/msggen"
)

func TestDisk_Write(t *testing.T) {
	dir := t.TempDir()
	w := NewDisk()

	err := w.Write(context.Background(), dir, msggen.Document{
		FileName: "FetchResult.msg",
		Lines:    []string{"std_msgs/Header header", "bool success"},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "FetchResult.msg"))
	require.NoError(t, err)
	assert.Equal(t, "std_msgs/Header header\nbool success\n", string(content))
}

func TestDisk_WriteMissingDirectory(t *testing.T) {
	err := NewDisk().Write(context.Background(), filepath.Join(t.TempDir(), "nope"), msggen.Document{FileName: "A.msg"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ioerr.ErrIO))
}
