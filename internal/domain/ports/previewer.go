package ports

import "context"

// Previewer renders a generated document into a standalone HTML page.
type Previewer interface {
	Preview(ctx context.Context, document []byte) error
}
