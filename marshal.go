package fraux

import (
	"fmt"
	"math"
	"reflect"
)

// Marshal converts a Go value into its canonical bencode encoding. Structs
// are encoded as dictionaries keyed by their `bencode:".."` tags.
func Marshal(s interface{}) ([]byte, error) {
	v, err := ValueOf(s)
	if err != nil {
		return nil, err
	}
	return Encode(v)
}

// ValueOf converts a Go value into a Value tree. Booleans become the
// integers 0 and 1, byte slices and byte arrays become byte strings, other
// slices and arrays become lists, and maps keyed by strings or byte arrays
// become dictionaries. Integers outside the 32-bit signed range are an error.
func ValueOf(s interface{}) (*Value, error) {
	if s == nil {
		return nil, fmt.Errorf("cannot marshal a nil value")
	}
	return valueOf(reflect.ValueOf(s))
}

func integerOf(n int64) (*Value, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, fmt.Errorf("expected number to be within %d and %d, got %d", math.MinInt32, math.MaxInt32, n)
	}
	return Integer(int32(n)), nil
}

func valueOf(v reflect.Value) (*Value, error) {
	switch v.Type().Kind() {
	case reflect.Bool:
		if v.Bool() {
			return Integer(1), nil
		}
		return Integer(0), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integerOf(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > math.MaxInt32 {
			return nil, fmt.Errorf("expected number to be less than %d, got %d", math.MaxInt32, v.Uint())
		}
		return Integer(int32(v.Uint())), nil
	case reflect.String:
		return String(v.String()), nil
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(b), v)
			return Bytes(b), nil
		}
		elems := make([]*Value, v.Len())
		for i := 0; i != v.Len(); i++ {
			elem, err := valueOf(v.Index(i))
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return List(elems...), nil
	case reflect.Struct:
		return structValueOf(v)
	case reflect.Map:
		entries := make(map[string]*Value, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key, err := dictKeyOf(iter.Key())
			if err != nil {
				return nil, err
			}
			val, err := valueOf(iter.Value())
			if err != nil {
				return nil, err
			}
			entries[key] = val
		}
		return Dict(entries), nil
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, fmt.Errorf("cannot marshal a nil %s", v.Type().Kind())
		}
		return valueOf(v.Elem())
	default:
		return nil, fmt.Errorf("unrecognized value type %#v %s", v, v.Type().Kind().String())
	}
}

func dictKeyOf(k reflect.Value) (string, error) {
	switch k.Type().Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Array:
		if k.Type().Elem().Kind() != reflect.Uint8 {
			return "", fmt.Errorf("cannot use a %s as a dictionary key", k.Type())
		}
		b := make([]byte, k.Len())
		reflect.Copy(reflect.ValueOf(b), k)
		return string(b), nil
	default:
		return "", fmt.Errorf("cannot use a %s as a dictionary key, keys must be byte strings", k.Type())
	}
}

func structValueOf(v reflect.Value) (*Value, error) {
	ty := v.Type()
	entries := make(map[string]*Value, ty.NumField())
	for i := 0; i != ty.NumField(); i++ {
		f := ty.Field(i)
		if !f.IsExported() {
			continue
		}
		t := f.Tag.Get("bencode")
		if t == "" {
			return nil, fmt.Errorf("expected bencode tag on field %s", f.Name)
		}
		if _, ok := entries[t]; ok {
			return nil, fmt.Errorf("duplicate bencode tag %s", t)
		}
		val, err := valueOf(v.Field(i))
		if err != nil {
			return nil, err
		}
		entries[t] = val
	}
	return Dict(entries), nil
}
