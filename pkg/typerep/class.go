package typerep

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

// Class identifies a structured type. Classes form a tree rooted at Object.
type Class struct {
	name   string
	parent *Class
}

// Object is the universal root class; every class descends from it.
var Object = &Class{name: "Object"}

// NewClass returns a class with the given parent. A nil parent means Object.
func NewClass(name string, parent *Class) *Class {
	if parent == nil {
		parent = Object
	}
	return &Class{name: name, parent: parent}
}

func (c *Class) Name() string { return c.name }

// Parent returns the direct ancestor of c, nil for Object.
func (c *Class) Parent() *Class {
	if c == Object {
		return nil
	}
	if c.parent == nil {
		return Object
	}
	return c.parent
}

func (c *Class) String() string { return c.name }

// IsAncestorOf returns whether c equals other or is one of its ancestors.
func (c *Class) IsAncestorOf(other *Class) bool {
	if c == nil || other == nil {
		return false
	}
	return Ancestors(other).Has(c)
}

// Ancestors returns c and all of its ancestors up to and including Object.
func Ancestors(c *Class) sets.Set[*Class] {
	s := sets.New[*Class]()
	for x := c; x != nil; x = x.Parent() {
		s.Insert(x)
	}
	return s
}

// MostSpecializedCommonType returns the most specific class that is an
// ancestor of, or equal to, both a and b. It walks the ancestry of a until it
// reaches a class that is also an ancestor of b; the walk ends at Object at
// the latest. Nil is returned when either argument is nil.
func MostSpecializedCommonType(a, b *Class) *Class {
	if a == nil || b == nil {
		return nil
	}
	ancestorsOfB := Ancestors(b)
	for x := a; x != nil; x = x.Parent() {
		if ancestorsOfB.Has(x) {
			return x
		}
	}
	return Object
}
