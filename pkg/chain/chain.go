// Package chain turns a set of distinct start points into an ordered,
// gapless sequence of intervals.
package chain

import (
	"fmt"
	"sort"

	"github.com/henderiw/allen/pkg/compare"
	"github.com/henderiw/allen/pkg/fail"
	"github.com/henderiw/allen/pkg/interval"
	"github.com/henderiw/allen/pkg/typerep"
	"github.com/iotaledger/hive.go/lo"
	"k8s.io/apimachinery/pkg/labels"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// Link is one element of a chain: a mandatory start and an optional payload.
// Its end is implied by the next link of the chain.
type Link[T any] struct {
	Start  T
	Labels labels.Set
}

func (r Link[T]) String() string {
	return fmt.Sprintf("start: %v, labels: %s", r.Start, r.Labels.String())
}

// Span is a link of a sorted chain together with its derived end, the start
// of the next link. The last span of a sequence has an indefinite end.
type Span[T any] struct {
	Link[T]
	end    T
	hasEnd bool
}

func (r Span[T]) End() (T, bool) { return r.end, r.hasEnd }

// Interval returns the span as an interval.
func (r Span[T]) Interval() interval.Interval[T] {
	i := interval.From(r.Start)
	if r.hasEnd {
		i = i.WithEnd(r.end)
	}
	return i
}

func (r Span[T]) String() string {
	return fmt.Sprintf("%s, labels: %s", r.Interval().String(), r.Labels.String())
}

// Validate returns why candidate is not a chain, or nil when it is. A chain
// is a collection of links whose starts share a common type and are
// pairwise distinct under cmp. The empty collection is a chain.
//
// A nil cmp uses the default comparator.
func Validate[T any](candidate []Link[T], cmp compare.Func[T]) error {
	if len(candidate) == 0 {
		return nil
	}
	starts := lo.Map(candidate, func(l Link[T]) any { return l.Start })
	common := typerep.CommonTypeRepresentation(starts...)
	switch {
	case common.IsNone():
		return fmt.Errorf("starts have no common type")
	case common.IsIndeterminate():
		return fmt.Errorf("all %d starts are indefinite", len(candidate))
	}

	var errs []error
	for idx, start := range starts {
		rep := typerep.Of(start)
		if rep.IsIndeterminate() {
			errs = append(errs, fmt.Errorf("link %d has no start", idx))
			continue
		}
		if !typerep.RepresentsSuperType(common, rep) {
			errs = append(errs, fmt.Errorf("start %v of link %d is a %s, not a %s", start, idx, rep, common))
		}
	}
	if len(errs) > 0 {
		return utilerrors.NewAggregate(errs)
	}

	var sorted []Link[T]
	if err := fail.Catch(func() { sorted = sortLinks(candidate, cmp) }); err != nil {
		return err
	}
	cmp = compare.OrDefault(cmp)
	for idx := 1; idx < len(sorted); idx++ {
		if cmp(sorted[idx-1].Start, sorted[idx].Start) == 0 {
			errs = append(errs, fmt.Errorf("duplicate start %v", sorted[idx].Start))
		}
	}
	return utilerrors.NewAggregate(errs)
}

// IsChain returns whether candidate is a chain, see Validate.
func IsChain[T any](candidate []Link[T], cmp compare.Func[T]) bool {
	if err := Validate(candidate, cmp); err != nil {
		fail.Logger().V(2).Info("not a chain", "reason", err.Error())
		return false
	}
	return true
}

// ToGaplessLeftDefiniteSequence sorts chain by start and derives the end of
// every span from the start of the next one. The last span keeps an
// indefinite end. The result covers every point from the first start on by
// exactly one span. chain must be a chain; anything else is a precondition
// violation.
//
// A nil cmp uses the default comparator.
func ToGaplessLeftDefiniteSequence[T any](chain []Link[T], cmp compare.Func[T]) []Span[T] {
	if err := Validate(chain, cmp); err != nil {
		fail.Fail("cannot build a gapless sequence: %v", err)
	}
	sorted := sortLinks(chain, cmp)
	seq := make([]Span[T], 0, len(sorted))
	for idx, l := range sorted {
		s := Span[T]{Link: l}
		if idx+1 < len(sorted) {
			s.end, s.hasEnd = sorted[idx+1].Start, true
		}
		seq = append(seq, s)
	}
	return seq
}

// Locate returns the span of a gapless sequence that covers point: the last
// span whose start is not after point. There is none when point lies before
// the first start.
//
// A nil cmp uses the default comparator.
func Locate[T any](seq []Span[T], point T, cmp compare.Func[T]) (Span[T], bool) {
	cmp = compare.OrDefault(cmp)
	idx := sort.Search(len(seq), func(i int) bool {
		return cmp(seq[i].Start, point) > 0
	})
	if idx == 0 {
		return Span[T]{}, false
	}
	return seq[idx-1], true
}

func sortLinks[T any](links []Link[T], cmp compare.Func[T]) []Link[T] {
	cmp = compare.OrDefault(cmp)
	sorted := lo.CopySlice(links)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i].Start, sorted[j].Start) < 0
	})
	return sorted
}
