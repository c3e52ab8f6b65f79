package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/emirpasic/gods/maps/hashmap"
)

// duper produces a new Product instance of a fixed concrete type from
// replacement children. It never allocates when the type has no exported
// fields (a canonical singleton).
type duper func(orig Term, children []Term) Term

// duperCache caches one duper per concrete reflect.Type, following the
// teacher's habit (lr/tables.go) of caching per-type analysis results in a
// gods container. Insertion is serialized with a mutex, since gods'
// hashmap.Map is not itself safe for concurrent writers.
var duperCache = struct {
	mu sync.Mutex
	m  *hashmap.Map
}{m: hashmap.New()}

// duplicate rebuilds a Product t from replacement children, using a
// duper cached by t's concrete reflect.Type.
func duplicate(t Term, children []Term) Term {
	rt := reflect.TypeOf(t)
	d := duperFor(rt)
	return d(t, children)
}

func duperFor(rt reflect.Type) duper {
	duperCache.mu.Lock()
	defer duperCache.mu.Unlock()
	if cached, found := duperCache.m.Get(rt); found {
		return cached.(duper)
	}
	tracer().Debugf("building duper for %s", rt)
	d := buildDuper(rt)
	duperCache.m.Put(rt, d)
	return d
}

func buildDuper(rt reflect.Type) duper {
	isPtr := rt.Kind() == reflect.Ptr
	structType := rt
	if isPtr {
		structType = rt.Elem()
	}
	fields := exportedFields(structType)
	if len(fields) == 0 {
		// Canonical singleton: reconstruction is the identity.
		return func(orig Term, children []Term) Term {
			return orig
		}
	}
	return func(orig Term, children []Term) Term {
		if len(children) != len(fields) {
			panic(fmt.Errorf("term: duplication failed for class %s with children %v: expected %d children, got %d",
				rt, children, len(fields), len(children)))
		}
		newVal := reflect.New(structType).Elem()
		for i, idx := range fields {
			fieldType := structType.Field(idx).Type
			setField(newVal.Field(idx), fieldType, children[i], rt, i)
		}
		if isPtr {
			return newVal.Addr().Interface()
		}
		return newVal.Interface()
	}
}

func setField(dst reflect.Value, fieldType reflect.Type, child Term, class reflect.Type, pos int) {
	child = unwrapPrimitive(child, fieldType)
	if child == nil {
		dst.Set(reflect.Zero(fieldType))
		return
	}
	cv := reflect.ValueOf(child)
	if cv.Type() != fieldType {
		if !cv.Type().ConvertibleTo(fieldType) {
			panic(fmt.Errorf("term: duplication failed for class %s with children %v: "+
				"field %d wants %s, got %s", class, child, pos, fieldType, cv.Type()))
		}
		cv = cv.Convert(fieldType)
	}
	dst.Set(cv)
}

// unwrapPrimitive unboxes a single-field wrapper child down to its
// payload field when the destination position expects a primitive kind
// directly.
func unwrapPrimitive(child Term, fieldType reflect.Type) Term {
	if child == nil || !isPrimitiveKind(fieldType.Kind()) {
		return child
	}
	ct := reflect.TypeOf(child)
	if ct == fieldType || ct.Kind() == fieldType.Kind() {
		return child
	}
	if ct.Kind() != reflect.Struct || ct.NumField() != 1 {
		return child
	}
	payload := reflect.ValueOf(child).Field(0)
	if payload.Type() == fieldType || payload.Type().ConvertibleTo(fieldType) {
		return payload.Interface()
	}
	return child
}

func isPrimitiveKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}
