// Package inbox manages the workspace drop directory for incoming pay
// application PDFs. Documents land in inbox/ and move to
// inbox/processed/ once parsed.
package inbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileInfo describes a PDF file in the inbox.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// inboxDir is the subdirectory for incoming PDFs.
const inboxDir = "inbox"

// processedDir is the subdirectory for parsed PDFs.
const processedDir = "inbox/processed"

// Scan returns PDF files in <root>/inbox/, in directory order.
func Scan(root string) ([]FileInfo, error) {
	dir := filepath.Join(root, inboxDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading inbox: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from inbox/ to inbox/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, inboxDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
