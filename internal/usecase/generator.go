package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"toc-generator/internal/domain/model"
	"toc-generator/internal/domain/ports"
)

// Generator orchestrates scanning solution files and publishing the report document.
type Generator struct {
	records      ports.RecordProvider
	template     ports.TemplateLoader
	publisher    ports.Publisher
	previewer    ports.Previewer
	renderer     *Renderer
	logger       ports.Logger
	sortKey      SortKey
	labels       model.LabelMap
	strictLabels bool
}

// GeneratorConfig controls how records are ordered and validated.
type GeneratorConfig struct {
	SuffixOffset int
	StrictLabels bool
	Labels       model.LabelMap
}

// Report is the outcome of one generation.
type Report struct {
	Document []byte
	Records  []model.Record
	Stats    model.Stats
}

// NewGenerator constructs a Generator. previewer may be nil.
func NewGenerator(
	records ports.RecordProvider,
	template ports.TemplateLoader,
	publisher ports.Publisher,
	previewer ports.Previewer,
	renderer *Renderer,
	logger ports.Logger,
	cfg GeneratorConfig,
) *Generator {
	labels := cfg.Labels
	if labels == nil {
		labels = model.LabelMap{}
	}
	return &Generator{
		records:      records,
		template:     template,
		publisher:    publisher,
		previewer:    previewer,
		renderer:     renderer,
		logger:       logger,
		sortKey:      SortKey{Offset: cfg.SuffixOffset},
		labels:       labels,
		strictLabels: cfg.StrictLabels,
	}
}

// Run regenerates the document and publishes it.
func (g *Generator) Run(ctx context.Context) error {
	start := time.Now()
	ctx = ports.WithRunID(ctx, uuid.NewString())
	g.logger.Info(ctx, "starting generation")

	report, err := g.Build(ctx)
	if err != nil {
		g.logger.Error(ctx, "failed to build document", "error", err)
		return err
	}

	if err := g.publisher.Publish(ctx, report.Document); err != nil {
		g.logger.Error(ctx, "failed to publish document", "error", err)
		return err
	}

	if g.previewer != nil {
		if err := g.previewer.Preview(ctx, report.Document); err != nil {
			g.logger.Error(ctx, "failed to write preview", "error", err)
			return err
		}
	}

	g.logger.Info(ctx, "generation completed",
		"records", len(report.Records),
		"categories", len(report.Stats.Categories),
		"duration", time.Since(start),
	)
	return nil
}

// Build renders the document in memory without publishing it.
func (g *Generator) Build(ctx context.Context) (*Report, error) {
	records, stats, err := g.Collect(ctx)
	if err != nil {
		return nil, err
	}

	lines, err := g.template.Lines(ctx)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}

	return &Report{
		Document: g.renderer.Render(lines, records, stats),
		Records:  records,
		Stats:    stats,
	}, nil
}

// Collect scans, sorts and counts the records.
func (g *Generator) Collect(ctx context.Context) ([]model.Record, model.Stats, error) {
	records, err := g.records.Records(ctx)
	if err != nil {
		return nil, model.Stats{}, fmt.Errorf("collect records: %w", err)
	}

	if err := SortRecords(records, g.sortKey); err != nil {
		return nil, model.Stats{}, fmt.Errorf("sort records: %w", err)
	}

	if err := g.checkLabels(ctx, records); err != nil {
		return nil, model.Stats{}, err
	}

	g.logger.Debug(ctx, "records collected", "records", len(records))
	return records, ComputeStats(records, g.labels), nil
}

func (g *Generator) checkLabels(ctx context.Context, records []model.Record) error {
	missing := UnmappedLabels(records, g.labels)
	if len(missing) == 0 {
		return nil
	}
	if g.strictLabels {
		return fmt.Errorf("%w: %v", model.ErrUnmappedLabel, missing)
	}
	for _, label := range missing {
		g.logger.Warn(ctx, "category has no display name", "label", label)
	}
	return nil
}
