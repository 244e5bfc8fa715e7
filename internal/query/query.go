package query

// Spec bundles the active predicates and an optional ordering.
type Spec[T any] struct {
	Predicates []Predicate[T]
	Less       Less[T]
	Order      Order
}

// Match is the conjunction of preds; nil predicates are skipped.
func Match[T any](item T, preds ...Predicate[T]) bool {
	for _, pred := range preds {
		if pred != nil && !pred(item) {
			return false
		}
	}
	return true
}

// Apply returns the items that satisfy every predicate, keeping their
// relative order. The input slice is never modified.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Match(item, preds...) {
			out = append(out, item)
		}
	}
	return out
}

// Run filters and, when spec.Less is set, stably sorts the result.
func Run[T any](items []T, spec Spec[T]) []T {
	out := Apply(items, spec.Predicates...)
	if spec.Less == nil {
		return out
	}
	return SortStable(out, spec.Less, spec.Order)
}

// Count returns how many items satisfy every predicate.
func Count[T any](items []T, preds ...Predicate[T]) int {
	n := 0
	for _, item := range items {
		if Match(item, preds...) {
			n++
		}
	}
	return n
}
