package fraux

import "bytes"

// Value is one node in a decoded bencode document: a byte string, a signed
// 32-bit integer, a list or a dictionary. A Value tree is immutable once
// constructed and owns its children exclusively.
type Value struct {
	kind Kind
	raw  []byte
	num  int32
	list []*Value
	dict map[string]*Value
}

// Bytes constructs a byte-string value. The slice is not copied; callers
// must not mutate it afterwards.
func Bytes(b []byte) *Value {
	return &Value{kind: KindBytes, raw: b}
}

// String constructs a byte-string value from a Go string.
func String(s string) *Value {
	return &Value{kind: KindBytes, raw: []byte(s)}
}

// Integer constructs an integer value.
func Integer(n int32) *Value {
	return &Value{kind: KindInteger, num: n}
}

// List constructs a list value preserving element order.
func List(elems ...*Value) *Value {
	return &Value{kind: KindList, list: elems}
}

// Dict constructs a dictionary value. Keys are raw byte strings held as Go
// strings; encoding order is always ascending by byte value regardless of
// how the map was built.
func Dict(entries map[string]*Value) *Value {
	if entries == nil {
		entries = make(map[string]*Value)
	}
	return &Value{kind: KindDict, dict: entries}
}

func (v *Value) Kind() Kind {
	return v.kind
}

// Bytes returns the payload of a byte-string value, nil for other kinds.
func (v *Value) Bytes() []byte {
	return v.raw
}

// Int32 returns the payload of an integer value, 0 for other kinds.
func (v *Value) Int32() int32 {
	return v.num
}

// List returns the elements of a list value, nil for other kinds.
func (v *Value) List() []*Value {
	return v.list
}

// Dict returns the entries of a dictionary value, nil for other kinds.
func (v *Value) Dict() map[string]*Value {
	return v.dict
}

// Len returns the payload length for byte strings and the child count for
// containers. Integers have length 0.
func (v *Value) Len() int {
	switch v.kind {
	case KindBytes:
		return len(v.raw)
	case KindList:
		return len(v.list)
	case KindDict:
		return len(v.dict)
	default:
		return 0
	}
}

// Get looks a key up in a dictionary value. It returns nil when the key is
// absent or the value is not a dictionary.
func (v *Value) Get(key string) *Value {
	if v.kind != KindDict {
		return nil
	}
	return v.dict[key]
}

// Equal reports structural equality. Lists compare element by element in
// order, dictionaries compare independent of key order.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBytes:
		return bytes.Equal(v.raw, o.raw)
	case KindInteger:
		return v.num == o.num
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(v.dict) != len(o.dict) {
			return false
		}
		for k, vv := range v.dict {
			ov, ok := o.dict[k]
			if !ok || !vv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
