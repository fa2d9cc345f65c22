package querykey

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ParamEncoder turns a query-params value into a single key segment. The
// encoding must be deterministic: structurally equal values encode to equal
// strings across calls, or list keys would drift apart from the entries
// they were cached under.
type ParamEncoder interface {
	Encode(params any) string
}

// defaultEncoder encodes params using reflection. Maps are emitted in
// sorted key order, structs by exported field, slices in order, pointers
// dereferenced. Unsupported values fall back to JSON rather than failing;
// a key that is merely ugly still caches correctly.
type defaultEncoder struct{}

// NewDefaultEncoder returns the reflection-based encoder used by
// NewFactory.
func NewDefaultEncoder() ParamEncoder {
	return &defaultEncoder{}
}

func (e *defaultEncoder) Encode(params any) string {
	return e.encodeValue(params)
}

func (e *defaultEncoder) encodeValue(v any) string {
	if v == nil {
		return "nil"
	}

	rv := reflect.ValueOf(v)
	rt := rv.Type()

	switch rt.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		return e.encodeValue(rv.Elem().Interface())

	case reflect.Slice:
		if rv.IsNil() {
			return "nil"
		}
		return e.encodeSequence(rv)

	case reflect.Array:
		return e.encodeSequence(rv)

	case reflect.Map:
		if rv.IsNil() {
			return "nil"
		}
		return e.encodeMap(rv)

	case reflect.Struct:
		return e.encodeStruct(rv, rt)

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return fmt.Sprintf("%v", rv.Interface())

	default:
		return e.jsonFallback(v)
	}
}

func (e *defaultEncoder) encodeSequence(rv reflect.Value) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = e.encodeValue(rv.Index(i).Interface())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// encodeMap emits key=value pairs sorted by encoded map key, so iteration
// order never leaks into the result.
func (e *defaultEncoder) encodeMap(rv reflect.Value) string {
	pairs := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := e.encodeValue(iter.Key().Interface())
		v := e.encodeValue(iter.Value().Interface())
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ",") + "}"
}

func (e *defaultEncoder) encodeStruct(rv reflect.Value, rt reflect.Type) string {
	parts := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)
		// Unset optional params stay out of the key so that a params
		// struct with only its zero fields set encodes the same as one
		// never touched.
		if fv.Kind() == reflect.Ptr && fv.IsNil() {
			continue
		}
		if fv.Kind() == reflect.Slice && fv.IsNil() {
			continue
		}
		parts = append(parts, field.Name+"="+e.encodeValue(fv.Interface()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (e *defaultEncoder) jsonFallback(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("opaque:%T", v)
	}
	return string(data)
}
