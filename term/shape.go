package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Shape classifies a Term for the purpose of generic decomposition.
type Shape int

// The four shapes the engine distinguishes, in the order they are tested.
const (
	Opaque Shape = iota
	RewritableShape
	ProductShape
	MappingShape
	SequenceShape
)

func (s Shape) String() string {
	switch s {
	case RewritableShape:
		return "Rewritable"
	case ProductShape:
		return "Product"
	case MappingShape:
		return "Mapping"
	case SequenceShape:
		return "Sequence"
	default:
		return "Opaque"
	}
}

// ShapeOf classifies t. Order matters: a value implementing Rewritable is
// never treated as a Product even if it happens to be struct-shaped.
func ShapeOf(t Term) Shape {
	if t == nil {
		return Opaque
	}
	if _, ok := t.(Rewritable); ok {
		return RewritableShape
	}
	switch t.(type) {
	case *hashmap.Map, *linkedhashmap.Map:
		return MappingShape
	case *arraylist.List:
		return SequenceShape
	}
	rt := reflect.TypeOf(t)
	rv := reflect.ValueOf(t)
	if rt.Kind() == reflect.Ptr {
		if rt.Elem().Kind() != reflect.Struct {
			return Opaque
		}
		return ProductShape
	}
	switch rt.Kind() {
	case reflect.Struct:
		return ProductShape
	case reflect.Map:
		return MappingShape
	case reflect.Slice, reflect.Array:
		return SequenceShape
	default:
		_ = rv
		return Opaque
	}
}

// Children returns the ordered children of t under its detected shape.
// Opaque values have no children.
func Children(t Term) []Term {
	switch ShapeOf(t) {
	case RewritableShape:
		r := t.(Rewritable)
		children := r.Deconstruct()
		if r.Arity() != len(children) {
			panic(fmt.Errorf("term: Arity()=%d does not match len(Deconstruct())=%d for %T",
				r.Arity(), len(children), t))
		}
		return children
	case ProductShape:
		return productChildren(t)
	case MappingShape:
		return mappingChildren(t)
	case SequenceShape:
		return sequenceChildren(t)
	default:
		return nil
	}
}

// Rebuild constructs a new value of t's exact concrete type from
// replacement children, in the same order Children(t) returned them.
// Rebuild does not check whether the children changed: callers that want
// to keep the original value when nothing changed compare children with
// Same and skip the call, as the traversals in package strategy do.
func Rebuild(t Term, children []Term) Term {
	switch ShapeOf(t) {
	case RewritableShape:
		r := t.(Rewritable)
		if r.Arity() != len(children) {
			panic(fmt.Errorf("term: Reconstruct requires %d children, got %d for %T",
				r.Arity(), len(children), t))
		}
		return r.Reconstruct(children)
	case ProductShape:
		return duplicate(t, children)
	case MappingShape:
		return rebuildMapping(t, children)
	case SequenceShape:
		return rebuildSequence(t, children)
	default:
		return t
	}
}

// --- Product -----------------------------------------------------------

func productChildren(t Term) []Term {
	rv := reflect.ValueOf(t)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	fields := exportedFields(rv.Type())
	children := make([]Term, len(fields))
	for i, idx := range fields {
		children[i] = rv.Field(idx).Interface()
	}
	return children
}

// exportedFields returns the indices of rt's exported fields, in
// declaration order. rt must be a struct type.
func exportedFields(rt reflect.Type) []int {
	fields := make([]int, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).PkgPath == "" { // exported
			fields = append(fields, i)
		}
	}
	return fields
}

// --- Mapping -------------------------------------------------------------

func mappingChildren(t Term) []Term {
	switch m := t.(type) {
	case *hashmap.Map:
		keys := m.Keys()
		children := make([]Term, len(keys))
		for i, k := range keys {
			v, _ := m.Get(k)
			children[i] = KV{Key: k, Value: v}
		}
		return children
	case *linkedhashmap.Map:
		keys := m.Keys()
		children := make([]Term, len(keys))
		for i, k := range keys {
			v, _ := m.Get(k)
			children[i] = KV{Key: k, Value: v}
		}
		return children
	default:
		rv := reflect.ValueOf(t)
		keys := rv.MapKeys()
		children := make([]Term, len(keys))
		for i, k := range keys {
			children[i] = KV{Key: k.Interface(), Value: rv.MapIndex(k).Interface()}
		}
		return children
	}
}

func rebuildMapping(t Term, children []Term) Term {
	pairs := make([]KV, len(children))
	for i, c := range children {
		kv, ok := c.(KV)
		if !ok {
			panic(fmt.Errorf("term: Mapping child %d is not a KV pair, got %T", i, c))
		}
		pairs[i] = kv
	}
	switch t.(type) {
	case *hashmap.Map:
		nm := hashmap.New()
		for _, kv := range pairs {
			nm.Put(kv.Key, kv.Value)
		}
		return nm
	case *linkedhashmap.Map:
		nm := linkedhashmap.New()
		for _, kv := range pairs {
			nm.Put(kv.Key, kv.Value)
		}
		return nm
	default:
		rt := reflect.TypeOf(t)
		nm := reflect.MakeMapWithSize(rt, len(pairs))
		for _, kv := range pairs {
			key := reflect.ValueOf(kv.Key)
			val := reflect.ValueOf(kv.Value)
			if !key.IsValid() {
				key = reflect.Zero(rt.Key())
			} else if key.Type() != rt.Key() && key.Type().ConvertibleTo(rt.Key()) {
				key = key.Convert(rt.Key())
			}
			if !val.IsValid() {
				val = reflect.Zero(rt.Elem())
			} else if val.Type() != rt.Elem() && val.Type().ConvertibleTo(rt.Elem()) {
				val = val.Convert(rt.Elem())
			}
			nm.SetMapIndex(key, val)
		}
		return nm.Interface()
	}
}

// PreferOrdered converts a native Go map into a *linkedhashmap.Map, whose
// iteration order is its insertion order, so that repeated traversals of
// the returned value all see the same order. The insertion order is the
// order in which the native map's keys are read, which is not defined;
// two conversions of the same map may order their entries differently.
// It has no effect if m is already one of the two gods map types.
func PreferOrdered(m Term) Term {
	switch v := m.(type) {
	case *linkedhashmap.Map, *hashmap.Map:
		return v
	}
	rv := reflect.ValueOf(m)
	if rv.Kind() != reflect.Map {
		return m
	}
	ordered := linkedhashmap.New()
	keys := rv.MapKeys()
	for _, k := range keys {
		ordered.Put(k.Interface(), rv.MapIndex(k).Interface())
	}
	return ordered
}

// --- Sequence ------------------------------------------------------------

func sequenceChildren(t Term) []Term {
	if list, ok := t.(*arraylist.List); ok {
		return list.Values()
	}
	rv := reflect.ValueOf(t)
	children := make([]Term, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		children[i] = rv.Index(i).Interface()
	}
	return children
}

func rebuildSequence(t Term, children []Term) Term {
	if _, ok := t.(*arraylist.List); ok {
		return arraylist.New(children...)
	}
	rt := reflect.TypeOf(t)
	switch rt.Kind() {
	case reflect.Array:
		na := reflect.New(rt).Elem()
		for i, c := range children {
			na.Index(i).Set(reflect.ValueOf(c).Convert(rt.Elem()))
		}
		return na.Interface()
	default: // slice
		ns := reflect.MakeSlice(rt, len(children), len(children))
		for i, c := range children {
			ns.Index(i).Set(reflect.ValueOf(c).Convert(rt.Elem()))
		}
		return ns.Interface()
	}
}

// --- Change detection ------------------------------------------------------

// Same reports whether a and b should be considered identical for the
// purpose of skipping a rebuild: reference equality for pointers, maps,
// channels and functions; recursive element-wise comparison for slices;
// reflect.DeepEqual as a structural fallback for everything else
// (primitives, arrays, plain structs passed by value).
func Same(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		if av.Len() != bv.Len() {
			return false
		}
		if av.Pointer() == bv.Pointer() {
			return true
		}
		for i := 0; i < av.Len(); i++ {
			if !Same(av.Index(i).Interface(), bv.Index(i).Interface()) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}
