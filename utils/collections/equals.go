package collections

import "reflect"

// valueEquals is == on the dynamic values. Operands that == would panic on
// are equal only when they are the same slice, map or func.
func valueEquals[V any](a, b V) bool {
	x, y := any(a), any(b)
	if !comparableValue(reflect.ValueOf(x)) || !comparableValue(reflect.ValueOf(y)) {
		return sameReference(reflect.ValueOf(x), reflect.ValueOf(y))
	}
	return x == y
}

func comparableValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		return comparableValue(v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !comparableValue(v.Index(i)) {
				return false
			}
		}
		if v.Len() == 0 {
			return v.Type().Comparable()
		}
		return true
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !comparableValue(v.Field(i)) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func sameReference(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() || a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	case reflect.Map, reflect.Func:
		return a.Pointer() == b.Pointer()
	default:
		return false
	}
}
