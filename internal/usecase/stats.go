package usecase

import (
	"sort"

	"github.com/samber/lo"

	"toc-generator/internal/domain/model"
)

// ComputeStats counts records per category and difficulty. Categories are the union of
// the label map keys and the labels present in records, in lexicographic key order.
func ComputeStats(records []model.Record, labels model.LabelMap) model.Stats {
	byLabel := lo.GroupBy(records, func(r model.Record) string {
		return r.Label
	})

	keys := lo.Uniq(append(labels.Keys(), lo.Keys(byLabel)...))
	sort.Strings(keys)

	categories := make([]model.CategoryStats, 0, len(keys))
	for _, key := range keys {
		c := countDifficulties(byLabel[key])
		c.Label = key
		c.DisplayName, _ = labels.DisplayName(key)
		categories = append(categories, c)
	}

	return model.Stats{
		Categories: categories,
		Total:      countDifficulties(records),
	}
}

func countDifficulties(records []model.Record) model.CategoryStats {
	return model.CategoryStats{
		Easy:   countDifficulty(records, model.DifficultyEasy),
		Medium: countDifficulty(records, model.DifficultyMedium),
		Hard:   countDifficulty(records, model.DifficultyHard),
		Total:  len(records),
	}
}

func countDifficulty(records []model.Record, difficulty string) int {
	return lo.CountBy(records, func(r model.Record) bool {
		return r.Difficulty == difficulty
	})
}

// UnmappedLabels returns the record labels missing from labels, sorted.
func UnmappedLabels(records []model.Record, labels model.LabelMap) []string {
	missing := lo.Uniq(lo.FilterMap(records, func(r model.Record, _ int) (string, bool) {
		_, ok := labels.DisplayName(r.Label)
		return r.Label, !ok
	}))
	sort.Strings(missing)
	return missing
}
