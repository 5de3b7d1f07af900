package fraux

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// EncodeError marks a Value violating an invariant the public constructors
// uphold, such as a nil child inside a container.
type EncodeError struct {
	msg string
}

func newEncodeError(msg string, vars ...interface{}) *EncodeError {
	return &EncodeError{fmt.Sprintf(msg, vars...)}
}

func (e *EncodeError) Error() string {
	return e.msg
}

// Encode renders a Value in canonical form: minimal integer representation
// and dictionary keys sorted ascending by raw byte value. A nested failure
// aborts the whole encode.
func Encode(v *Value) ([]byte, error) {
	w := newWriter()
	if err := w.writeValue(v); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

// Compare two values in shortlex-order based on their canonical encoding.
// Return 0 for equal, -1 for a less than b, and 1 for a greater than b.
func Compare(a, b *Value) (int, error) {
	abytes, err := Encode(a)
	if err != nil {
		return 0, err
	}
	bbytes, err := Encode(b)
	if err != nil {
		return 0, err
	}
	if len(abytes) < len(bbytes) {
		return -1, nil
	} else if len(abytes) > len(bbytes) {
		return 1, nil
	}
	return bytes.Compare(abytes, bbytes), nil
}

type writer struct {
	buf bytes.Buffer
}

func newWriter() writer {
	return writer{}
}

func (w *writer) writeByte(b byte) {
	w.buf.WriteByte(b)
}

func (w *writer) writeBytes(b []byte) {
	w.buf.WriteString(strconv.Itoa(len(b)))
	w.buf.WriteByte(bytesLengthSep)
	w.buf.Write(b)
}

func (w *writer) writeNumber(n int32) {
	w.buf.WriteByte(numberStart)
	w.buf.WriteString(strconv.FormatInt(int64(n), 10))
	w.buf.WriteByte(bencodeEnd)
}

func (w *writer) writeValue(v *Value) error {
	if v == nil {
		return newEncodeError("cannot encode a nil value")
	}
	switch v.kind {
	case KindBytes:
		w.writeBytes(v.raw)
		return nil
	case KindInteger:
		w.writeNumber(v.num)
		return nil
	case KindList:
		w.writeByte(listStart)
		for _, elem := range v.list {
			if err := w.writeValue(elem); err != nil {
				return err
			}
		}
		w.writeByte(bencodeEnd)
		return nil
	case KindDict:
		w.writeByte(dictStart)
		keys := make([]string, 0, len(v.dict))
		for k := range v.dict {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			w.writeBytes([]byte(k))
			if err := w.writeValue(v.dict[k]); err != nil {
				return err
			}
		}
		w.writeByte(bencodeEnd)
		return nil
	default:
		return newEncodeError("unrecognized value kind %d", v.kind)
	}
}
