package typerep

import (
	"fmt"
	"reflect"
)

// Kind tags the primitive kinds of values. KindClass marks a structured type
// whose identity is carried by a Class.
type Kind int

const (
	kindIndeterminate Kind = iota
	kindNone
	KindNumber
	KindBigInt
	KindString
	KindBoolean
	KindSymbol
	KindClass
)

func (k Kind) String() string {
	switch k {
	case kindIndeterminate:
		return "indeterminate"
	case kindNone:
		return "none"
	case KindNumber:
		return "number"
	case KindBigInt:
		return "bigint"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindSymbol:
		return "symbol"
	case KindClass:
		return "class"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsPrimitive returns whether k is one of the fixed primitive kind tags.
func (k Kind) IsPrimitive() bool {
	return k >= KindNumber && k <= KindSymbol
}

// Rep is the type representation of a value: a primitive kind tag or a
// class. The zero value is Indeterminate.
type Rep struct {
	kind  Kind
	class *Class
}

var (
	// Indeterminate is the representation of nil: the type is not known.
	Indeterminate = Rep{}
	// None is the result of a common type search that found no common type.
	None = Rep{kind: kindNone}
)

// OfKind returns the representation for a primitive kind tag.
func OfKind(k Kind) Rep {
	if !k.IsPrimitive() {
		return None
	}
	return Rep{kind: k}
}

// OfClass returns the representation for a class. A nil class is
// Indeterminate.
func OfClass(c *Class) Rep {
	if c == nil {
		return Indeterminate
	}
	return Rep{kind: KindClass, class: c}
}

func (r Rep) Kind() Kind            { return r.kind }
func (r Rep) Class() *Class         { return r.class }
func (r Rep) IsIndeterminate() bool { return r.kind == kindIndeterminate }
func (r Rep) IsNone() bool          { return r.kind == kindNone }
func (r Rep) IsPrimitive() bool     { return r.kind.IsPrimitive() }
func (r Rep) IsClass() bool         { return r.kind == KindClass }
func (r Rep) Equal(other Rep) bool  { return r == other }
func (r Rep) isDeterminate() bool   { return !r.IsIndeterminate() && !r.IsNone() }

func (r Rep) String() string {
	if r.kind == KindClass {
		return r.class.String()
	}
	return r.kind.String()
}

// IsTypeRepresentation is a best effort check whether candidate can act as
// a type representation: primitive kind tags, determinate Reps, classes and
// reflect types are accepted. It is not a complete validation.
func IsTypeRepresentation(candidate any) bool {
	switch c := candidate.(type) {
	case Kind:
		return c.IsPrimitive()
	case Rep:
		return c.isDeterminate()
	case *Class:
		return c != nil
	case reflect.Type:
		return c != nil
	}
	return false
}

// unify folds one more representation into a running common type.
func unify(acc, rep Rep) Rep {
	switch {
	case rep.IsIndeterminate():
		return acc
	case acc.IsIndeterminate():
		return rep
	case acc.IsNone(), rep.IsNone():
		return None
	case acc.IsClass() && rep.IsClass():
		return OfClass(MostSpecializedCommonType(acc.class, rep.class))
	case acc.kind == rep.kind:
		return acc
	}
	return None
}

// Unify returns the common type representation of reps, following the rules
// of CommonTypeRepresentation.
func Unify(reps ...Rep) Rep {
	acc := Indeterminate
	for _, rep := range reps {
		acc = unify(acc, rep)
	}
	return acc
}

// RepresentsSuperType returns whether super equals sub or, for classes, is
// an ancestor of sub.
func RepresentsSuperType(super, sub Rep) bool {
	if !super.isDeterminate() || !sub.isDeterminate() {
		return false
	}
	if super == sub {
		return true
	}
	if super.IsClass() && sub.IsClass() {
		return MostSpecializedCommonType(super.class, sub.class) == super.class
	}
	return false
}
