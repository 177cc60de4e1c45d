package alloc

import (
	"reflect"
	"sync"
)

// Untraced is implemented by types whose pointer fields never hold the only
// reference to the memory they point at, such as intrusive links between
// slots of one resource. Untraced reports whether a value of the type may
// be placed in memory the garbage collector does not scan.
//
// It is consulted on the zero value when an Allocator is created.
type Untraced interface {
	Untraced() bool
}

var pointerTypes sync.Map // reflect.Type -> bool

// HoldsPointers reports whether values of T contain pointers the garbage
// collector has to follow: pointers, strings, slices, maps, channels,
// functions or interfaces, directly or inside arrays and structs.
func HoldsPointers[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := pointerTypes.Load(t); ok {
		return v.(bool)
	}
	v := holdsPointers(t)
	pointerTypes.Store(t, v)
	return v
}

func holdsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.String, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	case reflect.Array:
		return t.Len() > 0 && holdsPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if holdsPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// traced reports whether slots for T must be typed Go memory.
func traced[T any]() bool {
	var zero T
	if u, ok := any(zero).(Untraced); ok {
		return !u.Untraced()
	}
	return HoldsPointers[T]()
}
