package filesystem

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"toc-generator/internal/domain/ports"
)

// TemplateFile loads the document prefix from disk.
type TemplateFile struct {
	path string
}

var _ ports.TemplateLoader = (*TemplateFile)(nil)

// NewTemplateFile creates a TemplateFile for path.
func NewTemplateFile(path string) *TemplateFile {
	return &TemplateFile{path: path}
}

// Lines returns the template lines without their line terminators.
func (t *TemplateFile) Lines(_ context.Context) ([]string, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return lines, nil
}
