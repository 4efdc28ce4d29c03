package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularFileSize(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(fn, []byte("hello"), 0o600))

	size, err := RegularFileSize(fn)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
}

func TestRegularFileSize_Missing(t *testing.T) {
	_, err := RegularFileSize(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestRegularFileSize_Directory(t *testing.T) {
	_, err := RegularFileSize(t.TempDir())
	assert.Error(t, err)
}

func TestHasAllowedExtension(t *testing.T) {
	allowed := []string{".txt", "pdf"}

	assert.True(t, HasAllowedExtension("notes.txt", allowed))
	assert.True(t, HasAllowedExtension("REPORT.PDF", allowed))
	assert.False(t, HasAllowedExtension("image.png", allowed))
	assert.False(t, HasAllowedExtension("noext", allowed))
}
