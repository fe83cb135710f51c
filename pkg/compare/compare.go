// Package compare provides the default total order used for interval points.
package compare

import (
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/henderiw/allen/pkg/fail"
	"github.com/henderiw/allen/pkg/typerep"
	"github.com/iotaledger/hive.go/constraints"
)

// Func compares a and b and returns -1, 0 or +1. A Func is a total order
// over its point type and fails on points that have no natural order.
type Func[T any] func(a, b T) int

// Comparer is implemented by structured points that order themselves
// against other values.
type Comparer interface {
	CompareTo(other any) int
}

// Primitiver is implemented by structured points that reduce to a
// primitive orderable value.
type Primitiver interface {
	Primitive() any
}

// Comparator is the default comparator bound to a type registry.
type Comparator struct {
	registry *typerep.Registry
}

func New(r *typerep.Registry) *Comparator {
	if r == nil {
		r = typerep.DefaultRegistry
	}
	return &Comparator{registry: r}
}

var defaultComparator = New(typerep.DefaultRegistry)

// IsLTComparableOrIndefinite returns whether v can be passed to LTCompare.
// Nil is accepted by convention: an indefinite value is always comparable.
func (c *Comparator) IsLTComparableOrIndefinite(v any) bool {
	rep := c.registry.Of(v)
	switch rep.Kind() {
	case typerep.KindSymbol:
		return false
	case typerep.KindNumber:
		return !isNaN(reflect.ValueOf(v))
	case typerep.KindClass:
		return c.hasCapability(v)
	}
	return true
}

// Compare returns -1, 0 or +1 for a < b, a == b and a > b. It fails when
// either value is nil, NaN or a symbol, when a structured value has no
// comparison capability, or when a and b have no common type.
func (c *Comparator) Compare(a, b any) int {
	repA, repB := c.registry.Of(a), c.registry.Of(b)
	fail.Unless(!repA.IsIndeterminate() && !repB.IsIndeterminate(), "cannot compare indefinite values %v and %v", a, b)
	fail.Unless(c.IsLTComparableOrIndefinite(a), "%v (%s) has no natural order", a, repA)
	fail.Unless(c.IsLTComparableOrIndefinite(b), "%v (%s) has no natural order", b, repB)
	common := typerep.Unify(repA, repB)
	fail.Unless(!common.IsNone(), "cannot compare %v (%s) with %v (%s): no common type", a, repA, b, repB)

	switch common.Kind() {
	case typerep.KindNumber:
		return compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b))
	case typerep.KindBigInt:
		return bigInt(a).Cmp(bigInt(b))
	case typerep.KindString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case typerep.KindBoolean:
		return compareBools(reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool())
	}
	return c.compareStructured(a, b)
}

func (c *Comparator) compareStructured(a, b any) int {
	if ca, ok := a.(Comparer); ok {
		return sign(ca.CompareTo(b))
	}
	if cb, ok := b.(Comparer); ok {
		return -sign(cb.CompareTo(a))
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() == vb.Type() {
		if m, ok := compareMethod(va); ok {
			return sign(int(m.Call([]reflect.Value{vb})[0].Int()))
		}
	}
	pa, okA := a.(Primitiver)
	pb, okB := b.(Primitiver)
	if okA && okB {
		primA, primB := pa.Primitive(), pb.Primitive()
		fail.Unless(c.registry.Of(primA).IsPrimitive(), "Primitive of %v returned %v, not a primitive value", a, primA)
		fail.Unless(c.registry.Of(primB).IsPrimitive(), "Primitive of %v returned %v, not a primitive value", b, primB)
		return c.Compare(primA, primB)
	}
	fail.Fail("cannot compare %v (%s) with %v (%s): no shared comparison capability", a, va.Type(), b, vb.Type())
	return 0
}

// TryCompare is Compare with the precondition violation returned as an
// error instead of aborting the caller.
func (c *Comparator) TryCompare(a, b any) (result int, err error) {
	err = fail.Catch(func() { result = c.Compare(a, b) })
	return result, err
}

// IsLTComparableOrIndefinite uses the default comparator.
func IsLTComparableOrIndefinite(v any) bool {
	return defaultComparator.IsLTComparableOrIndefinite(v)
}

// LTCompare is the default comparator over arbitrary points, see
// Comparator.Compare.
func LTCompare(a, b any) int {
	return defaultComparator.Compare(a, b)
}

// TryCompare uses the default comparator.
func TryCompare(a, b any) (int, error) {
	return defaultComparator.TryCompare(a, b)
}

// Default adapts LTCompare to a typed comparator.
func Default[T any]() Func[T] {
	return func(a, b T) int { return LTCompare(a, b) }
}

// OrDefault returns fn, or Default when fn is nil.
func OrDefault[T any](fn Func[T]) Func[T] {
	if fn == nil {
		return Default[T]()
	}
	return fn
}

// Ordered compares values of ordered Go types with < and >.
func Ordered[T constraints.Ordered]() Func[T] {
	return func(a, b T) int {
		fail.Unless(a == a && b == b, "NaN has no natural order")
		return order(a, b)
	}
}

// ByMethod compares values through their own Compare method, as found on
// time.Time, netip.Addr or decimal.Decimal.
func ByMethod[T constraints.Comparable[T]]() Func[T] {
	return func(a, b T) int { return sign(a.Compare(b)) }
}

// hasCapability reports whether a structured value can be ordered. A
// Primitiver only qualifies when it reduces to a primitive value.
func (c *Comparator) hasCapability(v any) bool {
	switch x := v.(type) {
	case Comparer:
		return true
	case Primitiver:
		if c.registry.Of(x.Primitive()).IsPrimitive() {
			return true
		}
	}
	_, ok := compareMethod(reflect.ValueOf(v))
	return ok
}

// compareMethod finds a Compare(T) int or Cmp(T) int method on v's own type.
func compareMethod(v reflect.Value) (reflect.Value, bool) {
	for _, name := range []string{"Compare", "Cmp"} {
		m := v.MethodByName(name)
		if !m.IsValid() {
			continue
		}
		mt := m.Type()
		if mt.NumIn() == 1 && mt.NumOut() == 1 && mt.In(0) == v.Type() && mt.Out(0).Kind() == reflect.Int {
			return m, true
		}
	}
	return reflect.Value{}, false
}

func bigInt(v any) *big.Int {
	switch x := v.(type) {
	case *big.Int:
		return x
	case big.Int:
		return &x
	}
	fail.Fail("%v is not a big integer", v)
	return nil
}

func isNaN(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	}
	return false
}

func compareNumbers(a, b reflect.Value) int {
	switch {
	case isSigned(a) && isSigned(b):
		return order(a.Int(), b.Int())
	case isUnsigned(a) && isUnsigned(b):
		return order(a.Uint(), b.Uint())
	case isSigned(a) && isUnsigned(b):
		if a.Int() < 0 {
			return -1
		}
		return order(uint64(a.Int()), b.Uint())
	case isUnsigned(a) && isSigned(b):
		if b.Int() < 0 {
			return 1
		}
		return order(a.Uint(), uint64(b.Int()))
	}
	if isFloat(a) && isFloat(b) {
		return order(a.Float(), b.Float())
	}
	// mixed integer and float compare exactly
	return exactFloat(a).Cmp(exactFloat(b))
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// exactFloat holds any Go integer or non-NaN float without rounding.
func exactFloat(v reflect.Value) *big.Float {
	switch {
	case isSigned(v):
		return new(big.Float).SetInt64(v.Int())
	case isUnsigned(v):
		return new(big.Float).SetUint64(v.Uint())
	}
	return new(big.Float).SetFloat64(v.Float())
}

func order[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func sign(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	}
	return 0
}
