package importer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// ImportDirectory imports every .pdf file under root as one batch. Hidden
// files and directories are skipped. A file that cannot be read is reported
// as a failed file rather than aborting the scan.
func (s *Service) ImportDirectory(ctx context.Context, root string, opts Options) (*Report, error) {
	if strings.TrimSpace(root) == "" {
		return nil, domain.NewValidationError("root", "required")
	}

	files, err := collectPDFs(root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, domain.NewValidationError("root", "no .pdf files found")
	}
	return s.ImportBatch(ctx, files, opts)
}

func collectPDFs(root string) ([]File, error) {
	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			files = append(files, File{Name: filepath.Base(path)})
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			// An empty buffer is reported as unreadable by the batch.
			data = nil
		}
		files = append(files, File{Name: d.Name(), Data: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return files, nil
}
