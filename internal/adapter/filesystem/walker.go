package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"toc-generator/internal/domain/model"
	"toc-generator/internal/domain/ports"
)

// Source implements ports.RecordProvider over a tree of category directories.
type Source struct {
	root      string
	extension string
	logger    ports.Logger
}

var _ ports.RecordProvider = (*Source)(nil)

// NewSource creates a Source reading files with the given extension (e.g. ".java")
// from the first-level subdirectories of root.
func NewSource(root, extension string, logger ports.Logger) *Source {
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return &Source{
		root:      root,
		extension: extension,
		logger:    logger,
	}
}

// Records extracts one record per solution file. Order follows directory listing order.
func (s *Source) Records(ctx context.Context) ([]model.Record, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read source root: %w", err)
	}

	var records []model.Record
	for _, entry := range entries {
		if !entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found, err := s.scanCategory(ctx, entry.Name())
		if err != nil {
			return nil, err
		}
		records = append(records, found...)
	}

	return records, nil
}

func (s *Source) scanCategory(ctx context.Context, label string) ([]model.Record, error) {
	dir := filepath.Join(s.root, label)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read category %s: %w", label, err)
	}

	records := make([]model.Record, 0, len(entries))
	for _, entry := range entries {
		file := entry.Name()
		if isHidden(file) || !entry.Type().IsRegular() || filepath.Ext(file) != s.extension {
			continue
		}

		meta, err := ExtractFile(filepath.Join(dir, file))
		if err != nil {
			return nil, err
		}

		records = append(records, model.Record{
			Name:       strings.SplitN(file, ".", 2)[0],
			Title:      meta.Title,
			Link:       meta.Link,
			Label:      label,
			Difficulty: meta.Difficulty,
		})
	}

	if s.logger != nil {
		s.logger.Debug(ctx, "scanned category", "label", label, "files", len(records))
	}
	return records, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
