package ports

import "context"

// Publisher replaces a generated document with new content.
type Publisher interface {
	Publish(ctx context.Context, content []byte) error
}
