package ports

import (
	"context"

	"toc-generator/internal/domain/model"
)

// RecordProvider collects solution records from a source tree.
type RecordProvider interface {
	Records(ctx context.Context) ([]model.Record, error)
}
