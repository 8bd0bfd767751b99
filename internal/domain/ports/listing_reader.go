package ports

import (
	"context"

	"toc-generator/internal/domain/model"
)

// ListingReader reads a previously generated document.
type ListingReader interface {
	ReadListing(ctx context.Context) (*model.Listing, error)
}
