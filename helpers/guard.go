// Package helpers holds small constructor guards and test fixtures shared by the discovery packages.
package helpers

import "reflect"

// StrPanic panics with panicMessage if s is empty; otherwise returns s.
// Constructors use it for required strings such as the registry base URL.
func StrPanic(s string, panicMessage string) string {
	if s == "" {
		panic(panicMessage)
	}
	return s
}

// NilPanic panics with panicMessage if v is nil (including typed nil pointers, maps, funcs and
// interfaces); otherwise returns v unchanged.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
