// Package sortkey builds multi-key comparators from an ordered list of keys,
// so the tie-break order of a sort lives in data rather than in a closure at
// the call site.
package sortkey

import "cmp"

// Direction of a single key.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Key compares two values on one criterion.
type Key[T any] struct {
	Name      string
	Compare   func(a, b T) int
	Direction Direction
}

// By builds a key from an extractor returning an ordered value.
func By[T any, K cmp.Ordered](name string, extract func(T) K, dir Direction) Key[T] {
	return Key[T]{
		Name:      name,
		Compare:   func(a, b T) int { return cmp.Compare(extract(a), extract(b)) },
		Direction: dir,
	}
}

// Func builds a key from an arbitrary three-way comparison.
func Func[T any](name string, compare func(a, b T) int, dir Direction) Key[T] {
	return Key[T]{Name: name, Compare: compare, Direction: dir}
}

// Comparator applies keys left to right; the first non-zero result decides.
func Comparator[T any](keys ...Key[T]) func(a, b T) int {
	return func(a, b T) int {
		for _, k := range keys {
			c := k.Compare(a, b)
			if c == 0 {
				continue
			}
			if k.Direction == Descending {
				return -c
			}
			return c
		}
		return 0
	}
}
