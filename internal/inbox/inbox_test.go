package inbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInboxFile(t *testing.T, root, name string) {
	t.Helper()
	dir := filepath.Join(root, "inbox")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeInboxFile(t, root, "pay-app-12.pdf")
	writeInboxFile(t, root, "pay-app-13.PDF")
	writeInboxFile(t, root, "notes.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "inbox", "processed"), 0o755))

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "pay-app-12.pdf", files[0].Name)
	assert.Equal(t, "pay-app-13.PDF", files[1].Name)
	assert.Equal(t, filepath.Join(root, "inbox", "pay-app-12.pdf"), files[0].Path)
}

func TestScan_MissingInbox(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMarkProcessed(t *testing.T) {
	root := t.TempDir()
	writeInboxFile(t, root, "pay-app-12.pdf")

	require.NoError(t, MarkProcessed(root, "pay-app-12.pdf"))

	_, err := os.Stat(filepath.Join(root, "inbox", "pay-app-12.pdf"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, "inbox", "processed", "pay-app-12.pdf"))
	assert.NoError(t, err)
}

func TestMarkProcessed_MissingFile(t *testing.T) {
	err := MarkProcessed(t.TempDir(), "gone.pdf")
	assert.Error(t, err)
}
