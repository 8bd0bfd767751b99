package preview

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"toc-generator/internal/domain/ports"
)

const (
	pageHeader = "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n"
	pageFooter = "</body>\n</html>\n"
)

// HTMLPreview renders the generated Markdown document into a standalone HTML page.
type HTMLPreview struct {
	path     string
	title    string
	markdown goldmark.Markdown
	logger   ports.Logger
}

var _ ports.Previewer = (*HTMLPreview)(nil)

// New creates an HTMLPreview writing to path. Raw HTML in the document, such as the
// generated tables, is passed through unchanged.
func New(path, title string, logger ports.Logger) *HTMLPreview {
	return &HTMLPreview{
		path:  path,
		title: title,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		logger: logger,
	}
}

// Render converts document and writes the full page to w.
func (p *HTMLPreview) Render(document []byte, w io.Writer) error {
	if _, err := fmt.Fprintf(w, pageHeader, html.EscapeString(p.title)); err != nil {
		return err
	}
	if err := p.markdown.Convert(document, w); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}
	_, err := io.WriteString(w, pageFooter)
	return err
}

// Preview writes the HTML page for document to the configured path.
func (p *HTMLPreview) Preview(ctx context.Context, document []byte) error {
	var buf bytes.Buffer
	if err := p.Render(document, &buf); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create preview directory: %w", err)
	}
	if err := os.WriteFile(p.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}

	if p.logger != nil {
		p.logger.Info(ctx, "preview written", "path", p.path)
	}
	return nil
}
