package usecase

import (
	"context"
	"fmt"
	"io/fs"

	"toc-generator/internal/domain/model"
)

type fakeProvider struct {
	records []model.Record
	err     error
}

func (f *fakeProvider) Records(context.Context) ([]model.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Record, len(f.records))
	copy(out, f.records)
	return out, nil
}

type fakeTemplate struct {
	lines []string
	err   error
}

func (f *fakeTemplate) Lines(context.Context) ([]string, error) {
	return f.lines, f.err
}

type fakePublisher struct {
	published [][]byte
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, content []byte) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, append([]byte(nil), content...))
	return nil
}

type fakePreviewer struct {
	documents [][]byte
}

func (f *fakePreviewer) Preview(_ context.Context, document []byte) error {
	f.documents = append(f.documents, document)
	return nil
}

type fakeListing struct {
	listing *model.Listing
	missing bool
}

func (f *fakeListing) ReadListing(context.Context) (*model.Listing, error) {
	if f.missing {
		return nil, fmt.Errorf("read document: %w", fs.ErrNotExist)
	}
	return f.listing, nil
}

type recordingLogger struct {
	warnings []string
	errors   []string
}

func (l *recordingLogger) Debug(context.Context, string, ...any) {}
func (l *recordingLogger) Info(context.Context, string, ...any) {}

func (l *recordingLogger) Warn(_ context.Context, msg string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprint(append([]any{msg}, args...)...))
}

func (l *recordingLogger) Error(_ context.Context, msg string, _ ...any) {
	l.errors = append(l.errors, msg)
}
