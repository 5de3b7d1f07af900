package fraux

import (
	"fmt"
	"math"
	"reflect"
)

// Unmarshal decodes buf and assigns the result to the target, which must be
// a non-nil pointer. Unlike Decode it insists on consuming the whole buffer.
// Struct targets follow the same rules as Marshal: every exported field
// needs a `bencode:".."` tag, every tagged field must be present in the
// document and the document may not carry unknown keys.
func Unmarshal(buf []byte, t interface{}) error {
	v, n, err := Decode(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return newDecodeError(ErrMalformed, n, "expected to be at end of buffer")
	}
	target := reflect.ValueOf(t)
	if target.Type().Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("expected a non-nil pointer, got %s", target.Type().Kind())
	}
	return assignValue(v, target.Elem())
}

// FromValue assigns an already decoded Value to the target, following the
// same rules as Unmarshal.
func FromValue(v *Value, t interface{}) error {
	target := reflect.ValueOf(t)
	if target.Type().Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("expected a non-nil pointer, got %s", target.Type().Kind())
	}
	return assignValue(v, target.Elem())
}

func assignInt(v *Value, min, max int64, target reflect.Value) error {
	if v.Kind() != KindInteger {
		return fmt.Errorf("expected an integer, got a %s", v.Kind())
	}
	n := int64(v.Int32())
	if n < min || n > max {
		return fmt.Errorf("expected number to be within %d and %d, got %d", min, max, n)
	}
	target.SetInt(n)
	return nil
}

func assignUint(v *Value, max uint64, target reflect.Value) error {
	if v.Kind() != KindInteger {
		return fmt.Errorf("expected an integer, got a %s", v.Kind())
	}
	n := v.Int32()
	if n < 0 || uint64(n) > max {
		return fmt.Errorf("expected number to be within 0 and %d, got %d", max, n)
	}
	target.SetUint(uint64(n))
	return nil
}

func assignValue(v *Value, target reflect.Value) error {
	if !target.CanSet() {
		return fmt.Errorf("cannot set value of type %s", target.Type())
	}
	switch target.Type().Kind() {
	case reflect.Bool:
		if v.Kind() != KindInteger {
			return fmt.Errorf("expected an integer, got a %s", v.Kind())
		}
		if v.Int32() > 1 || v.Int32() < 0 {
			return fmt.Errorf("expected number to be 0 or 1, got %d", v.Int32())
		}
		target.SetBool(v.Int32() == 1)
		return nil
	case reflect.Int8:
		return assignInt(v, math.MinInt8, math.MaxInt8, target)
	case reflect.Int16:
		return assignInt(v, math.MinInt16, math.MaxInt16, target)
	case reflect.Int32, reflect.Int, reflect.Int64:
		return assignInt(v, math.MinInt32, math.MaxInt32, target)
	case reflect.Uint8:
		return assignUint(v, math.MaxUint8, target)
	case reflect.Uint16:
		return assignUint(v, math.MaxUint16, target)
	case reflect.Uint32, reflect.Uint, reflect.Uint64:
		return assignUint(v, math.MaxInt32, target)
	case reflect.String:
		if v.Kind() != KindBytes {
			return fmt.Errorf("expected bytes, got a %s", v.Kind())
		}
		target.SetString(string(v.Bytes()))
		return nil
	case reflect.Slice:
		if target.Type().Elem().Kind() == reflect.Uint8 {
			if v.Kind() != KindBytes {
				return fmt.Errorf("expected bytes, got a %s", v.Kind())
			}
			b := make([]byte, len(v.Bytes()))
			copy(b, v.Bytes())
			target.SetBytes(b)
			return nil
		}
		if v.Kind() != KindList {
			return fmt.Errorf("expected a list, got a %s", v.Kind())
		}
		a := reflect.MakeSlice(target.Type(), 0, v.Len())
		for _, elem := range v.List() {
			slot := reflect.New(target.Type().Elem()).Elem()
			if err := assignValue(elem, slot); err != nil {
				return err
			}
			a = reflect.Append(a, slot)
		}
		target.Set(a)
		return nil
	case reflect.Array:
		if target.Type().Elem().Kind() == reflect.Uint8 {
			if v.Kind() != KindBytes {
				return fmt.Errorf("expected bytes, got a %s", v.Kind())
			}
			if len(v.Bytes()) != target.Len() {
				return fmt.Errorf("expected %d bytes, got %d", target.Len(), len(v.Bytes()))
			}
			reflect.Copy(target, reflect.ValueOf(v.Bytes()))
			return nil
		}
		if v.Kind() != KindList {
			return fmt.Errorf("expected a list, got a %s", v.Kind())
		}
		if v.Len() != target.Len() {
			return fmt.Errorf("expected %d elements, got %d", target.Len(), v.Len())
		}
		for i, elem := range v.List() {
			if err := assignValue(elem, target.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
		return assignStruct(v, target)
	case reflect.Map:
		if v.Kind() != KindDict {
			return fmt.Errorf("expected a dictionary, got a %s", v.Kind())
		}
		m := reflect.MakeMapWithSize(target.Type(), v.Len())
		keyType := target.Type().Key()
		for k, entry := range v.Dict() {
			key, err := dictKeyFor(k, keyType)
			if err != nil {
				return err
			}
			slot := reflect.New(target.Type().Elem()).Elem()
			if err := assignValue(entry, slot); err != nil {
				return err
			}
			m.SetMapIndex(key, slot)
		}
		target.Set(m)
		return nil
	case reflect.Pointer:
		out := reflect.New(target.Type().Elem())
		if err := assignValue(v, out.Elem()); err != nil {
			return err
		}
		target.Set(out)
		return nil
	default:
		return fmt.Errorf("unhandled kind %v", target.Type().Kind())
	}
}

func dictKeyFor(k string, keyType reflect.Type) (reflect.Value, error) {
	switch keyType.Kind() {
	case reflect.String:
		return reflect.ValueOf(k).Convert(keyType), nil
	case reflect.Array:
		if keyType.Elem().Kind() != reflect.Uint8 {
			return reflect.Value{}, fmt.Errorf("cannot use a %s as a dictionary key", keyType)
		}
		if len(k) != keyType.Len() {
			return reflect.Value{}, fmt.Errorf("expected a %d-byte key, got %d bytes", keyType.Len(), len(k))
		}
		keyPtr := reflect.New(keyType)
		reflect.Copy(keyPtr.Elem(), reflect.ValueOf([]byte(k)))
		return keyPtr.Elem(), nil
	default:
		return reflect.Value{}, fmt.Errorf("cannot use a %s as a dictionary key, keys must be byte strings", keyType)
	}
}

func assignStruct(v *Value, target reflect.Value) error {
	if v.Kind() != KindDict {
		return fmt.Errorf("expected a dictionary, got a %s", v.Kind())
	}
	ty := target.Type()
	seen := 0
	for i := 0; i != ty.NumField(); i++ {
		f := ty.Field(i)
		if !f.IsExported() {
			continue
		}
		t := f.Tag.Get("bencode")
		if t == "" {
			return fmt.Errorf("expected bencode tag on field %s", f.Name)
		}
		entry := v.Get(t)
		if entry == nil {
			return fmt.Errorf("missing key for %s", t)
		}
		if err := assignValue(entry, target.Field(i)); err != nil {
			return err
		}
		seen++
	}
	if seen != v.Len() {
		return fmt.Errorf("dictionary has %d unexpected keys", v.Len()-seen)
	}
	return nil
}
