package prediction

import (
	"slices"
)

// LabelEncoder maps categorical values to their index in a sorted class list.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// FitLabelEncoder learns the distinct values, sorted.
func FitLabelEncoder(values []string) *LabelEncoder {
	classes := slices.Clone(values)
	slices.Sort(classes)

	return &LabelEncoder{Classes: slices.Compact(classes)}
}

// Transform returns the index of value and whether it was seen during fitting.
func (e *LabelEncoder) Transform(value string) (float64, bool) {
	idx, found := slices.BinarySearch(e.Classes, value)
	if !found {
		return 0, false
	}

	return float64(idx), true
}
