package model

import "sort"

// LabelMap maps a category directory name to the name shown in the report.
type LabelMap map[string]string

// DefaultLabels returns the category table used when the config file sets none.
func DefaultLabels() LabelMap {
	return LabelMap{
		"array":        "Array",
		"bfs":          "BFS",
		"binarySearch": "Binary Search",
		"bitOperation": "Bit Operation",
		"dp":           "Dynamic Programming",
		"mathematics":  "Mathematics",
		"stack":        "Stack",
		"string":       "String",
		"tree":         "Tree",
		"unionFind":    "Union Find",
	}
}

// DisplayName returns the display name for label and whether it is mapped.
// Unmapped labels yield an empty name.
func (m LabelMap) DisplayName(label string) (string, bool) {
	name, ok := m[label]
	return name, ok
}

// Keys returns the mapped labels in lexicographic order.
func (m LabelMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
