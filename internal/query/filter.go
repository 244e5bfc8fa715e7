package query

import (
	"math"
	"strconv"
	"strings"
)

// Predicate is a pure test applied to one entity.
type Predicate[T any] func(T) bool

// All matches every item. Empty criteria collapse to it.
func All[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// Text matches when term is a case-insensitive substring of any field.
func Text[T any](term string, fields ...func(T) string) Predicate[T] {
	if term == "" {
		return All[T]()
	}
	needle := strings.ToLower(term)
	return func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				return true
			}
		}
		return false
	}
}

// Equal matches exact values. The zero value of V means "any".
func Equal[T any, V comparable](criterion V, field func(T) V) Predicate[T] {
	var zero V
	if criterion == zero {
		return All[T]()
	}
	return func(item T) bool {
		return field(item) == criterion
	}
}

// Intersects matches when the item carries at least one of tags.
func Intersects[T any](tags []string, field func(T) []string) Predicate[T] {
	if len(tags) == 0 {
		return All[T]()
	}
	wanted := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		wanted[tag] = struct{}{}
	}
	return func(item T) bool {
		for _, tag := range field(item) {
			if _, ok := wanted[tag]; ok {
				return true
			}
		}
		return false
	}
}

// NumericRange is an inclusive [Min, Max] interval; a nil Max is open-ended.
type NumericRange struct {
	Min float64
	Max *float64
}

func (r NumericRange) Contains(v float64) bool {
	if v < r.Min {
		return false
	}
	return r.Max == nil || v <= *r.Max
}

// Range matches values inside r. A nil range matches everything.
func Range[T any](r *NumericRange, field func(T) float64) Predicate[T] {
	if r == nil {
		return All[T]()
	}
	bounds := *r
	return func(item T) bool {
		return bounds.Contains(field(item))
	}
}

// ParseBound reads one finite bound. NaN and infinities are rejected.
func ParseBound(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !finite(v) {
		return 0, false
	}
	return v, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParseRange reads "min-max" or "min" (open-ended). Anything it cannot
// read yields nil so that the filter excludes nothing.
func ParseRange(s string) *NumericRange {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	minStr, maxStr, hasMax := strings.Cut(s, "-")
	min, ok := ParseBound(minStr)
	if !ok {
		return nil
	}
	if !hasMax {
		return &NumericRange{Min: min}
	}

	max, ok := ParseBound(maxStr)
	if !ok || max < min {
		return nil
	}
	return &NumericRange{Min: min, Max: &max}
}

// NewRange builds a range from optional bounds; nil when both are absent,
// when either is not finite, or when they are inverted.
func NewRange(min, max *float64) *NumericRange {
	if min == nil && max == nil {
		return nil
	}
	if (min != nil && !finite(*min)) || (max != nil && !finite(*max)) {
		return nil
	}
	r := &NumericRange{Max: max}
	if min != nil {
		r.Min = *min
	}
	if r.Max != nil && *r.Max < r.Min {
		return nil
	}
	return r
}
