package interval

import (
	"github.com/henderiw/allen/pkg/compare"
	"github.com/iotaledger/hive.go/lo"
)

// IsEnclosing returns whether i encloses every interval in is: i starts no
// later and ends no earlier than each of them. Intervals in is with an
// indefinite bound cannot be enclosed, and an i that is not fully definite
// encloses nothing. An empty is is enclosed by any i, indefinite or not.
//
// A nil cmp uses the default comparator.
func IsEnclosing[T any](i Interval[T], is []Interval[T], cmp compare.Func[T]) bool {
	if len(is) == 0 {
		return true
	}
	if !i.IsDefinite() {
		return false
	}
	cmp = compare.OrDefault(cmp)
	for _, j := range is {
		if !j.IsDefinite() {
			return false
		}
		if cmp(i.start, j.start) > 0 || cmp(j.end, i.end) > 0 {
			return false
		}
	}
	return true
}

// IsMinimalEnclosing returns whether i is enclosing and tight: some interval
// in is starts at i's start and some interval ends at i's end. i must be
// fully definite, so an empty is never has a minimal enclosing interval.
//
// A nil cmp uses the default comparator.
func IsMinimalEnclosing[T any](i Interval[T], is []Interval[T], cmp compare.Func[T]) bool {
	if !i.IsDefinite() {
		return false
	}
	cmp = compare.OrDefault(cmp)
	if !IsEnclosing(i, is, cmp) {
		return false
	}
	var tightStart, tightEnd bool
	for _, j := range is {
		tightStart = tightStart || cmp(i.start, j.start) == 0
		tightEnd = tightEnd || cmp(i.end, j.end) == 0
	}
	return tightStart && tightEnd
}

type enclosingFold[T any] struct {
	interval  Interval[T]
	openStart bool
	openEnd   bool
}

// MinimalEnclosing returns the smallest interval enclosing all of is. Its
// start is the earliest start in is, or indefinite as soon as one interval
// has an indefinite start; the end is computed the same way. The result for
// an empty is is the fully indefinite interval.
//
// A nil cmp uses the default comparator.
func MinimalEnclosing[T any](is []Interval[T], cmp compare.Func[T]) Interval[T] {
	cmp = compare.OrDefault(cmp)
	return lo.Reduce(is, func(acc enclosingFold[T], j Interval[T]) enclosingFold[T] {
		switch {
		case acc.openStart:
		case !j.hasStart:
			acc.openStart = true
			acc.interval = acc.interval.WithoutStart()
		case !acc.interval.hasStart || cmp(j.start, acc.interval.start) < 0:
			acc.interval = acc.interval.WithStart(j.start)
		}
		switch {
		case acc.openEnd:
		case !j.hasEnd:
			acc.openEnd = true
			acc.interval = acc.interval.WithoutEnd()
		case !acc.interval.hasEnd || cmp(j.end, acc.interval.end) > 0:
			acc.interval = acc.interval.WithEnd(j.end)
		}
		return acc
	}, enclosingFold[T]{}).interval
}
