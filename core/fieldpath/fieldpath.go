package fieldpath

import (
	"fmt"
	"reflect"
	"strings"
)

// Separator joins segments of an attribute path.
const Separator = "__"

// Resolve walks path against root and returns the terminal value as a string.
// Every segment must resolve; any miss fails the whole call with a
// *ResolutionError and no partial result.
func Resolve(root any, path string) (string, error) {
	rootType := typeName(root)
	if root == nil || path == "" {
		return "", &ResolutionError{Path: path, RootType: rootType}
	}

	current := reflect.ValueOf(root)
	for _, segment := range strings.Split(path, Separator) {
		next, ok := lookup(current, segment)
		if !ok {
			return "", &ResolutionError{Path: path, RootType: rootType}
		}
		current = next
	}

	return stringify(current), nil
}

// lookup finds name on v after dereferencing pointers and interfaces.
// Struct fields match by exact name first, then case-insensitively among
// exported fields. String-keyed maps match by exact key.
func lookup(v reflect.Value, name string) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := range t.NumField() {
			if t.Field(i).Name == name && t.Field(i).IsExported() {
				return v.Field(i), true
			}
		}
		for i := range t.NumField() {
			f := t.Field(i)
			if f.IsExported() && strings.EqualFold(f.Name, name) {
				return v.Field(i), true
			}
		}

	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			if mv := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key())); mv.IsValid() {
				return mv, true
			}
		}
	}

	return reflect.Value{}, false
}

// stringify converts the terminal value using its natural string conversion:
// fmt.Stringer when implemented, otherwise the fmt "%v" representation.
func stringify(v reflect.Value) string {
	nilable := v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface
	if v.CanInterface() && !(nilable && v.IsNil()) {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.String {
		return v.String()
	}
	if !v.CanInterface() {
		return ""
	}
	return fmt.Sprintf("%v", v.Interface())
}

// typeName names the root for diagnostics, dereferencing pointer types.
func typeName(root any) string {
	if root == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(root)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
