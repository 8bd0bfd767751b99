package usecase

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"toc-generator/internal/domain/model"
)

// DefaultSuffixOffset is the length of the "LintCode" prefix in solution file names.
const DefaultSuffixOffset = 8

// SortKey parses the numeric suffix that orders records.
type SortKey struct {
	// Offset is the number of leading characters skipped before the integer.
	Offset int
}

// Parse returns the integer following the first Offset characters of name.
func (k SortKey) Parse(name string) (int, error) {
	if k.Offset < 0 || len(name) < k.Offset {
		return 0, fmt.Errorf("%w: %q is shorter than prefix length %d", model.ErrMalformedName, name, k.Offset)
	}
	n, err := strconv.Atoi(name[k.Offset:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q has no numeric suffix after %d characters", model.ErrMalformedName, name, k.Offset)
	}
	return n, nil
}

// SortRecords stably orders records by their numeric suffix.
// Any malformed name fails the whole sort and leaves records untouched.
func SortRecords(records []model.Record, key SortKey) error {
	type keyed struct {
		key    int
		record model.Record
	}

	items := make([]keyed, 0, len(records))
	for _, r := range records {
		n, err := key.Parse(r.Name)
		if err != nil {
			return err
		}
		items = append(items, keyed{key: n, record: r})
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		return cmp.Compare(a.key, b.key)
	})

	for i, item := range items {
		records[i] = item.record
	}
	return nil
}
