package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/samber/lo"

	"toc-generator/internal/domain/model"
	"toc-generator/internal/domain/ports"
)

// Verification compares a published document against the source tree.
type Verification struct {
	// Missing lists records on disk that the document does not list.
	Missing []string
	// Extra lists names in the document with no file on disk.
	Extra []string
	// OutOfDate is set when regenerating would change the document.
	OutOfDate bool
}

// Verifier detects stale documents without rewriting them.
type Verifier struct {
	generator *Generator
	listing   ports.ListingReader
	logger    ports.Logger
}

// NewVerifier constructs a Verifier.
func NewVerifier(generator *Generator, listing ports.ListingReader, logger ports.Logger) *Verifier {
	return &Verifier{
		generator: generator,
		listing:   listing,
		logger:    logger,
	}
}

// Verify regenerates the document in memory and compares it with the published one.
// A document that does not exist yet is reported as out of date.
func (v *Verifier) Verify(ctx context.Context) (*Verification, error) {
	report, err := v.generator.Build(ctx)
	if err != nil {
		return nil, err
	}
	names := lo.Map(report.Records, func(r model.Record, _ int) string {
		return r.Name
	})

	current, err := v.listing.ReadListing(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		v.logger.Info(ctx, "no published document found")
		return &Verification{Missing: names, OutOfDate: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read published document: %w", err)
	}

	missing, extra := lo.Difference(names, current.Names)
	result := &Verification{
		Missing:   missing,
		Extra:     extra,
		OutOfDate: !bytes.Equal(report.Document, current.Content) || !slices.Equal(names, current.Names),
	}

	v.logger.Info(ctx, "verification completed",
		"out_of_date", result.OutOfDate,
		"missing", len(result.Missing),
		"extra", len(result.Extra),
	)
	return result, nil
}
