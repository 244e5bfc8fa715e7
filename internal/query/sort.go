package query

import (
	"slices"
	"strings"
)

type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// ParseOrder falls back to def on anything but "asc"/"desc".
func ParseOrder(s string, def Order) Order {
	switch Order(strings.ToLower(s)) {
	case Ascending:
		return Ascending
	case Descending:
		return Descending
	}
	return def
}

func (o Order) Flip() Order {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// Less reports whether a sorts before b in ascending order.
type Less[T any] func(a, b T) bool

// SortStable returns a sorted copy. Equal elements keep their input order
// in both directions.
func SortStable[T any](items []T, less Less[T], order Order) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		if order == Descending {
			a, b = b, a
		}
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	return out
}

// Sorter tracks the selected sort column. Selecting the active key again
// flips the direction; a new key starts descending.
type Sorter struct {
	Key   string `json:"key"`
	Order Order  `json:"order"`
}

func NewSorter(key string) Sorter {
	return Sorter{Key: key, Order: Descending}
}

func (s Sorter) Select(key string) Sorter {
	if key == s.Key {
		return Sorter{Key: key, Order: s.Order.Flip()}
	}
	return NewSorter(key)
}
