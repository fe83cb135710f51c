package interval

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/henderiw/allen/pkg/compare"
)

// Relation is a set of basic Allen relations between two intervals. A
// single basic relation holds between two proper, fully definite intervals;
// a wider set expresses uncertainty.
type Relation uint16

// The 13 basic relations, in the order of their codes "pmoFDseSdfOMP".
const (
	Precedes Relation = 1 << iota
	Meets
	Overlaps
	FinishedBy
	Contains
	Starts
	Equals
	StartedBy
	During
	Finishes
	OverlappedBy
	MetBy
	PrecededBy
)

const basicRelationCount = 13

const (
	EmptyRelation Relation = 0
	FullRelation  Relation = 1<<basicRelationCount - 1

	// Encloses holds when the first interval starts no later and ends no
	// earlier than the second.
	Encloses = Equals | StartedBy | Contains | FinishedBy
	// EnclosedBy is the converse of Encloses.
	EnclosedBy = Equals | Starts | During | Finishes
	// Concurs holds when the intervals share at least one point.
	Concurs = FullRelation &^ (Precedes | Meets | MetBy | PrecededBy)
)

const basicRelationCodes = "pmoFDseSdfOMP"

// ParseRelation parses the notation produced by String, e.g. "(pmo)".
func ParseRelation(s string) (Relation, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	var r Relation
	for _, c := range s {
		idx := strings.IndexRune(basicRelationCodes, c)
		if idx < 0 {
			return EmptyRelation, fmt.Errorf("invalid basic relation code %q in %q", c, s)
		}
		r |= 1 << idx
	}
	return r, nil
}

func (r Relation) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for idx := 0; idx < basicRelationCount; idx++ {
		if r&(1<<idx) != 0 {
			sb.WriteByte(basicRelationCodes[idx])
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// IsBasic returns whether r is exactly one basic relation.
func (r Relation) IsBasic() bool {
	return r != EmptyRelation && r&(r-1) == 0 && r <= FullRelation
}

// Implies returns whether every basic relation in r is also in other.
func (r Relation) Implies(other Relation) bool {
	return r&^other == 0
}

func (r Relation) Union(other Relation) Relation { return (r | other) & FullRelation }

func (r Relation) Intersection(other Relation) Relation { return r & other }

func (r Relation) Complement() Relation { return FullRelation &^ r }

// Converse returns the relation that holds with the intervals swapped.
func (r Relation) Converse() Relation {
	// the codes are ordered so that a basic relation and its converse are
	// mirrored around Equals
	rev := bits.Reverse16(uint16(r))
	return Relation(rev>>(16-basicRelationCount)) & FullRelation
}

// BasicRelations returns the basic relations in r.
func (r Relation) BasicRelations() []Relation {
	var out []Relation
	for idx := 0; idx < basicRelationCount; idx++ {
		if b := Relation(1 << idx); r&b != 0 {
			out = append(out, b)
		}
	}
	return out
}

// outcome is a set of possible point comparison results.
type outcome uint8

const (
	lt outcome = 1 << iota
	eq
	gt
	anyOutcome = lt | eq | gt
)

// basicPatterns lists, per basic relation, the comparison of
// (start1, start2), (start1, end2), (end1, start2) and (end1, end2).
var basicPatterns = [basicRelationCount][4]outcome{
	{lt, lt, lt, lt}, // p
	{lt, lt, eq, lt}, // m
	{lt, lt, gt, lt}, // o
	{lt, lt, gt, eq}, // F
	{lt, lt, gt, gt}, // D
	{eq, lt, gt, lt}, // s
	{eq, lt, gt, eq}, // e
	{eq, lt, gt, gt}, // S
	{gt, lt, gt, lt}, // d
	{gt, lt, gt, eq}, // f
	{gt, lt, gt, gt}, // O
	{gt, eq, gt, gt}, // M
	{gt, gt, gt, gt}, // P
}

// point is an interval bound: either a known value or an unknown value
// that is known to lie strictly below or above a bound of the same interval.
type point[T any] struct {
	v        T
	known    bool
	below    T // strict upper bound of an unknown start
	hasBelow bool
	above    T // strict lower bound of an unknown end
	hasAbove bool
}

func startPoint[T any](i Interval[T]) point[T] {
	if i.hasStart {
		return point[T]{v: i.start, known: true}
	}
	return point[T]{below: i.end, hasBelow: i.hasEnd}
}

func endPoint[T any](i Interval[T]) point[T] {
	if i.hasEnd {
		return point[T]{v: i.end, known: true}
	}
	return point[T]{above: i.start, hasAbove: i.hasStart}
}

// max returns the largest value p can have and whether it is attained.
func (p point[T]) max() (T, bool, bool) {
	if p.known {
		return p.v, true, true
	}
	return p.below, false, p.hasBelow
}

// min returns the smallest value p can have and whether it is attained.
func (p point[T]) min() (T, bool, bool) {
	if p.known {
		return p.v, true, true
	}
	return p.above, false, p.hasAbove
}

func possible[T any](x, y point[T], cmp compare.Func[T]) outcome {
	if x.known && y.known {
		switch c := cmp(x.v, y.v); {
		case c < 0:
			return lt
		case c == 0:
			return eq
		}
		return gt
	}
	if xMax, xIncl, ok := x.max(); ok {
		if yMin, yIncl, ok := y.min(); ok {
			if c := cmp(xMax, yMin); c < 0 || (c == 0 && !(xIncl && yIncl)) {
				return lt
			}
		}
	}
	if xMin, xIncl, ok := x.min(); ok {
		if yMax, yIncl, ok := y.max(); ok {
			if c := cmp(xMin, yMax); c > 0 || (c == 0 && !(xIncl && yIncl)) {
				return gt
			}
		}
	}
	return anyOutcome
}

// Relate returns the basic relations that can hold between i1 and i2 given
// their definite bounds. For two proper, fully definite intervals the
// result is a single basic relation. Degenerate intervals, where start is
// not before end, relate by EmptyRelation.
//
// A nil cmp uses the default comparator.
func Relate[T any](i1, i2 Interval[T], cmp compare.Func[T]) Relation {
	cmp = compare.OrDefault(cmp)
	s1, e1, s2, e2 := startPoint(i1), endPoint(i1), startPoint(i2), endPoint(i2)
	if !proper(s1, e1, cmp) || !proper(s2, e2, cmp) {
		return EmptyRelation
	}
	actual := [4]outcome{
		possible(s1, s2, cmp),
		possible(s1, e2, cmp),
		possible(e1, s2, cmp),
		possible(e1, e2, cmp),
	}
	var r Relation
	for idx, pattern := range basicPatterns {
		if actual[0]&pattern[0] != 0 &&
			actual[1]&pattern[1] != 0 &&
			actual[2]&pattern[2] != 0 &&
			actual[3]&pattern[3] != 0 {
			r |= 1 << idx
		}
	}
	return r
}

func proper[T any](s, e point[T], cmp compare.Func[T]) bool {
	if s.known && e.known {
		return cmp(s.v, e.v) < 0
	}
	return true
}
