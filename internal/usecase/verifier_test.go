package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toc-generator/internal/domain/model"
)

func TestVerifierUpToDate(t *testing.T) {
	f := newFixture(
		model.Record{Name: "LintCode1", Label: "dp", Difficulty: "Easy"},
		model.Record{Name: "LintCode2", Label: "tree", Difficulty: "Hard"},
	)
	g := f.generator(false)
	report, err := g.Build(context.Background())
	require.NoError(t, err)

	listing := &fakeListing{listing: &model.Listing{
		Content: report.Document,
		Names:   []string{"LintCode1", "LintCode2"},
	}}

	result, err := NewVerifier(g, listing, f.logger).Verify(context.Background())
	require.NoError(t, err)
	assert.False(t, result.OutOfDate)
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.Extra)
}

func TestVerifierDetectsAddedAndRemovedFiles(t *testing.T) {
	f := newFixture(
		model.Record{Name: "LintCode1", Label: "dp"},
		model.Record{Name: "LintCode3", Label: "dp"},
	)
	listing := &fakeListing{listing: &model.Listing{
		Content: []byte("old"),
		Names:   []string{"LintCode1", "LintCode2"},
	}}

	result, err := NewVerifier(f.generator(false), listing, f.logger).Verify(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OutOfDate)
	assert.Equal(t, []string{"LintCode3"}, result.Missing)
	assert.Equal(t, []string{"LintCode2"}, result.Extra)
}

func TestVerifierDetectsContentChange(t *testing.T) {
	f := newFixture(model.Record{Name: "LintCode1", Label: "dp", Title: "New title"})
	listing := &fakeListing{listing: &model.Listing{
		Content: []byte("stale"),
		Names:   []string{"LintCode1"},
	}}

	result, err := NewVerifier(f.generator(false), listing, f.logger).Verify(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OutOfDate)
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.Extra)
}

func TestVerifierMissingDocument(t *testing.T) {
	f := newFixture(model.Record{Name: "LintCode1", Label: "dp"})

	result, err := NewVerifier(f.generator(false), &fakeListing{missing: true}, f.logger).Verify(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OutOfDate)
	assert.Equal(t, []string{"LintCode1"}, result.Missing)
}

func TestVerifierBuildFailure(t *testing.T) {
	f := newFixture(model.Record{Name: "bad", Label: "dp"})

	_, err := NewVerifier(f.generator(false), &fakeListing{missing: true}, f.logger).Verify(context.Background())
	assert.ErrorIs(t, err, model.ErrMalformedName)
}
