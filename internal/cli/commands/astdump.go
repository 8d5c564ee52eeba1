package commands

import (
	"fmt"
	"reflect"
)

// describeNode converts a syntax tree into maps, slices and scalars that
// encode cleanly as JSON or YAML. Each struct node gets a "node" key holding
// its type name; zero-valued fields are omitted.
func describeNode(n any) any {
	if n == nil {
		return nil
	}
	return describeValue(reflect.ValueOf(n))
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

func describeValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return describeValue(v.Elem())

	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		if v.Elem().Kind() == reflect.Struct {
			return describeStruct(v.Elem())
		}
		return describeValue(v.Elem())

	case reflect.Struct:
		return describeStruct(v)

	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = describeValue(v.Index(i))
		}
		return out

	case reflect.String:
		return v.String()

	case reflect.Bool:
		return v.Bool()

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type().Implements(stringerType) {
			return v.Interface().(fmt.Stringer).String()
		}
		return v.Int()
	}

	return fmt.Sprintf("%v", v.Interface())
}

func describeStruct(v reflect.Value) map[string]any {
	t := v.Type()
	out := map[string]any{"node": t.Name()}
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.IsZero() {
			continue
		}
		if (fv.Kind() == reflect.Slice) && fv.Len() == 0 {
			continue
		}
		out[field.Name] = describeValue(fv)
	}
	return out
}
