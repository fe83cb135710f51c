package typerep

import (
	"fmt"
	"math/big"
	"reflect"
	"sync"

	"github.com/iotaledger/hive.go/lo"
)

// Classifier is implemented by values that know their own class.
type Classifier interface {
	TypeClass() *Class
}

// Symbol is a unique, unordered value.
type Symbol struct {
	description string
}

func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

func (s *Symbol) String() string { return fmt.Sprintf("Symbol(%s)", s.description) }

// Registry maps Go types onto classes. Types that are not registered get an
// implicit class named after the Go type, with Object as parent.
type Registry struct {
	m        *sync.RWMutex
	classes  map[reflect.Type]*Class
	implicit map[reflect.Type]*Class
}

func NewRegistry() *Registry {
	return &Registry{
		m:        new(sync.RWMutex),
		classes:  map[reflect.Type]*Class{},
		implicit: map[reflect.Type]*Class{},
	}
}

// DefaultRegistry is used by the package level functions.
var DefaultRegistry = NewRegistry()

// Register binds the dynamic type of sample to a new class with the given
// name and parent.
func (r *Registry) Register(sample any, name string, parent *Class) (*Class, error) {
	if sample == nil {
		return nil, fmt.Errorf("cannot register class %q for a nil sample", name)
	}
	t := reflect.TypeOf(sample)

	r.m.Lock()
	defer r.m.Unlock()
	if c, ok := r.classes[t]; ok {
		return nil, fmt.Errorf("type %s is already registered as class %s", t, c)
	}
	c := NewClass(name, parent)
	r.classes[t] = c
	return c, nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(sample any, name string, parent *Class) *Class {
	return lo.PanicOnErr(r.Register(sample, name, parent))
}

func (r *Registry) registered(t reflect.Type) (*Class, bool) {
	r.m.RLock()
	defer r.m.RUnlock()
	c, ok := r.classes[t]
	return c, ok
}

// ClassOf returns the class of a structured value, creating the implicit
// class on first use.
func (r *Registry) ClassOf(v any) *Class {
	if v == nil {
		return nil
	}
	if c, ok := v.(Classifier); ok {
		if class := c.TypeClass(); class != nil {
			return class
		}
	}
	t := reflect.TypeOf(v)
	if c, ok := r.registered(t); ok {
		return c
	}

	r.m.Lock()
	defer r.m.Unlock()
	if c, ok := r.classes[t]; ok {
		return c
	}
	if c, ok := r.implicit[t]; ok {
		return c
	}
	c := NewClass(t.String(), Object)
	r.implicit[t] = c
	return c
}

// Of returns the type representation of v. Nil values, including typed nil
// pointers, are Indeterminate.
func (r *Registry) Of(v any) Rep {
	if IsNil(v) {
		return Indeterminate
	}
	rv := reflect.ValueOf(v)

	switch v.(type) {
	case *big.Int, big.Int:
		return OfKind(KindBigInt)
	case *Symbol:
		return OfKind(KindSymbol)
	}
	if _, ok := v.(Classifier); ok {
		return OfClass(r.ClassOf(v))
	}
	if c, ok := r.registered(rv.Type()); ok {
		return OfClass(c)
	}

	switch rv.Kind() {
	case reflect.Bool:
		return OfKind(KindBoolean)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return OfKind(KindNumber)
	case reflect.String:
		return OfKind(KindString)
	}
	return OfClass(r.ClassOf(v))
}

// CommonTypeRepresentation returns the narrowest representation shared by
// all non-nil values. It returns None as soon as two values have
// incompatible kinds, and Indeterminate when there are no non-nil values.
func (r *Registry) CommonTypeRepresentation(values ...any) Rep {
	return lo.Reduce(values, func(acc Rep, v any) Rep {
		return unify(acc, r.Of(v))
	}, Indeterminate)
}

// IsNil returns whether v is nil or a typed nil, a value without type
// representation.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Register registers a class in the DefaultRegistry.
func Register(sample any, name string, parent *Class) (*Class, error) {
	return DefaultRegistry.Register(sample, name, parent)
}

// MustRegister registers a class in the DefaultRegistry and panics on error.
func MustRegister(sample any, name string, parent *Class) *Class {
	return DefaultRegistry.MustRegister(sample, name, parent)
}

// Of returns the type representation of v using the DefaultRegistry.
func Of(v any) Rep {
	return DefaultRegistry.Of(v)
}

// CommonTypeRepresentation uses the DefaultRegistry.
func CommonTypeRepresentation(values ...any) Rep {
	return DefaultRegistry.CommonTypeRepresentation(values...)
}
