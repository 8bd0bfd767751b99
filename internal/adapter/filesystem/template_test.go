package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFileLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.md")
	require.NoError(t, os.WriteFile(path, []byte("# ShuaTi\n\nSolutions.\n"), 0o644))

	lines, err := NewTemplateFile(path).Lines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"# ShuaTi", "", "Solutions."}, lines)
}

func TestTemplateFileMissing(t *testing.T) {
	_, err := NewTemplateFile(filepath.Join(t.TempDir(), "template.md")).Lines(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
