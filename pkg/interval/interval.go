// Package interval implements intervals over generic points, the enclosing
// interval algorithms and the basic relations of Allen's interval algebra.
package interval

import (
	"fmt"

	"github.com/henderiw/allen/pkg/compare"
	"github.com/henderiw/allen/pkg/typerep"
)

// Interval is an immutable pair of points. Start and end are independently
// optional; a missing bound is indefinite, unknown or unbounded in that
// direction. No order between start and end is enforced.
type Interval[T any] struct {
	start    T
	end      T
	hasStart bool
	hasEnd   bool
}

// New returns an interval with both bounds set. Nil points are treated as
// indefinite bounds.
func New[T any](start, end T) Interval[T] {
	return Indefinite[T]().WithStart(start).WithEnd(end)
}

// From returns an interval with a start and an indefinite end.
func From[T any](start T) Interval[T] {
	return Indefinite[T]().WithStart(start)
}

// Until returns an interval with an indefinite start and an end.
func Until[T any](end T) Interval[T] {
	return Indefinite[T]().WithEnd(end)
}

// Indefinite returns the interval with both bounds indefinite.
func Indefinite[T any]() Interval[T] {
	return Interval[T]{}
}

func (i Interval[T]) Start() (T, bool) { return i.start, i.hasStart }

func (i Interval[T]) End() (T, bool) { return i.end, i.hasEnd }

func (i Interval[T]) HasStart() bool { return i.hasStart }

func (i Interval[T]) HasEnd() bool { return i.hasEnd }

// IsDefinite returns whether both bounds are known.
func (i Interval[T]) IsDefinite() bool { return i.hasStart && i.hasEnd }

// IsIndefinite returns whether both bounds are unknown.
func (i Interval[T]) IsIndefinite() bool { return !i.hasStart && !i.hasEnd }

// WithStart returns a copy of i with the given start.
func (i Interval[T]) WithStart(start T) Interval[T] {
	if typerep.IsNil(start) {
		return i.WithoutStart()
	}
	i.start, i.hasStart = start, true
	return i
}

// WithoutStart returns a copy of i with an indefinite start.
func (i Interval[T]) WithoutStart() Interval[T] {
	var zero T
	i.start, i.hasStart = zero, false
	return i
}

// WithEnd returns a copy of i with the given end.
func (i Interval[T]) WithEnd(end T) Interval[T] {
	if typerep.IsNil(end) {
		return i.WithoutEnd()
	}
	i.end, i.hasEnd = end, true
	return i
}

// WithoutEnd returns a copy of i with an indefinite end.
func (i Interval[T]) WithoutEnd() Interval[T] {
	var zero T
	i.end, i.hasEnd = zero, false
	return i
}

// Equal returns whether both intervals have the same definiteness and equal
// bounds under cmp. A nil cmp uses the default comparator.
func (i Interval[T]) Equal(other Interval[T], cmp compare.Func[T]) bool {
	if i.hasStart != other.hasStart || i.hasEnd != other.hasEnd {
		return false
	}
	cmp = compare.OrDefault(cmp)
	if i.hasStart && cmp(i.start, other.start) != 0 {
		return false
	}
	if i.hasEnd && cmp(i.end, other.end) != 0 {
		return false
	}
	return true
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%s, %s]", bound(i.start, i.hasStart), bound(i.end, i.hasEnd))
}

func bound[T any](v T, ok bool) string {
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%v", v)
}
