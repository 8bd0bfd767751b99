package ports

import "context"

// TemplateLoader returns the lines of the document prefix.
type TemplateLoader interface {
	Lines(ctx context.Context) ([]string, error)
}
