package fraux

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind classifies decoding failures.
type ErrorKind int

const (
	// ErrMalformed marks an unexpected byte where the grammar requires a
	// specific literal or digit class.
	ErrMalformed ErrorKind = iota
	// ErrTruncated marks end of input while a production still expects bytes.
	ErrTruncated
	// ErrRange marks a syntactically valid integer outside the 32-bit range.
	ErrRange
	// ErrUnknownType marks a dispatch byte matching none of the four
	// productions.
	ErrUnknownType
	// ErrTooDeep marks container nesting beyond the configured maximum.
	ErrTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformed:
		return "malformed token"
	case ErrTruncated:
		return "truncated input"
	case ErrRange:
		return "value out of range"
	case ErrUnknownType:
		return "unsupported type"
	case ErrTooDeep:
		return "nesting too deep"
	default:
		return "unknown"
	}
}

type DecodeError struct {
	Kind ErrorKind
	Pos  int
	msg  string
}

func newDecodeError(kind ErrorKind, pos int, msg string, vars ...interface{}) *DecodeError {
	return &DecodeError{kind, pos, fmt.Sprintf(msg, vars...)}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at pos %d: %s", e.Kind, e.Pos, e.msg)
}

// Decode parses a single bencode value from the front of buf. It returns the
// value and the number of bytes consumed. Trailing bytes after a complete
// value are not an error; callers can detect them by comparing the consumed
// count against len(buf). Byte-string payloads alias buf rather than copying.
func Decode(buf []byte) (*Value, int, error) {
	return DecodeDepth(buf, DefaultMaxDepth)
}

// DecodeDepth is Decode with an explicit nesting limit.
func DecodeDepth(buf []byte, maxDepth int) (*Value, int, error) {
	r := &reader{buf: buf, maxDepth: maxDepth}
	v, err := r.readValue(0)
	if err != nil {
		return nil, 0, err
	}
	return v, r.pos, nil
}

type reader struct {
	buf      []byte
	pos      int
	maxDepth int
}

func (r *reader) isAtEnd() bool {
	return r.pos >= len(r.buf)
}

func (r *reader) expectByte(b byte) error {
	if r.isAtEnd() {
		return newDecodeError(ErrTruncated, r.pos, "expected 0x%x, but no more bytes left", b)
	}
	c := r.buf[r.pos]
	if c != b {
		return newDecodeError(ErrMalformed, r.pos, "expected 0x%x got 0x%x", b, c)
	}
	r.pos++
	return nil
}

// digitRun advances over a run of ASCII digits and returns it. The run may be
// empty; callers decide whether that is an error.
func (r *reader) digitRun() []byte {
	start := r.pos
	for !r.isAtEnd() && r.buf[r.pos] >= 0x30 && r.buf[r.pos] <= 0x39 {
		r.pos++
	}
	return r.buf[start:r.pos]
}

func (r *reader) readValue(depth int) (*Value, error) {
	if depth > r.maxDepth {
		return nil, newDecodeError(ErrTooDeep, r.pos, "nesting exceeds %d levels", r.maxDepth)
	}
	if r.isAtEnd() {
		return nil, newDecodeError(ErrTruncated, r.pos, "expected a value, but no more bytes left")
	}
	switch c := r.buf[r.pos]; {
	case c >= 0x30 && c <= 0x39:
		return r.readBytes()
	case c == numberStart:
		return r.readInt()
	case c == listStart:
		return r.readList(depth)
	case c == dictStart:
		return r.readDict(depth)
	default:
		return nil, newDecodeError(ErrUnknownType, r.pos, "unexpected 0x%x, expected one of 'i', 'l', 'd' or a digit", c)
	}
}

func (r *reader) readInt() (*Value, error) {
	if err := r.expectByte(numberStart); err != nil {
		return nil, err
	}
	start := r.pos
	if !r.isAtEnd() && r.buf[r.pos] == 0x2d {
		r.pos++
	}
	neg := r.pos > start
	digits := r.digitRun()
	if len(digits) == 0 {
		if r.isAtEnd() {
			return nil, newDecodeError(ErrTruncated, r.pos, "expected digits, but no more bytes left")
		}
		return nil, newDecodeError(ErrMalformed, r.pos, "expected digits, got 0x%x", r.buf[r.pos])
	}
	val, err := strconv.ParseInt(string(r.buf[start:r.pos]), 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return nil, newDecodeError(ErrRange, start, "%s does not fit a 32-bit integer", numErr.Num)
		}
		return nil, newDecodeError(ErrMalformed, start, "cannot parse %q as an integer", r.buf[start:r.pos])
	}
	if val == 0 && neg {
		return nil, newDecodeError(ErrMalformed, start, "negative 0 not allowed")
	}
	if err := r.expectByte(bencodeEnd); err != nil {
		return nil, err
	}
	return Integer(int32(val)), nil
}

func (r *reader) readBytes() (*Value, error) {
	start := r.pos
	digits := r.digitRun()
	if len(digits) == 0 {
		if r.isAtEnd() {
			return nil, newDecodeError(ErrTruncated, r.pos, "expected a length, but no more bytes left")
		}
		return nil, newDecodeError(ErrMalformed, r.pos, "expected a length, got 0x%x", r.buf[r.pos])
	}
	if err := r.expectByte(bytesLengthSep); err != nil {
		return nil, err
	}
	// Leading zeros in the length are tolerated; the value re-encodes with
	// the minimal form.
	l, err := strconv.ParseInt(string(digits), 10, 32)
	if err != nil {
		return nil, newDecodeError(ErrRange, start, "length %s out of range", digits)
	}
	if int(l) > len(r.buf)-r.pos {
		return nil, newDecodeError(ErrTruncated, r.pos, "declared %d bytes, only %d left", l, len(r.buf)-r.pos)
	}
	b := r.buf[r.pos : r.pos+int(l)]
	r.pos += int(l)
	return Bytes(b), nil
}

func (r *reader) readList(depth int) (*Value, error) {
	if err := r.expectByte(listStart); err != nil {
		return nil, err
	}
	list := []*Value{}
	for {
		if r.isAtEnd() {
			return nil, newDecodeError(ErrTruncated, r.pos, "unterminated list")
		}
		if r.buf[r.pos] == bencodeEnd {
			r.pos++
			return List(list...), nil
		}
		elem, err := r.readValue(depth + 1)
		if err != nil {
			return nil, err
		}
		list = append(list, elem)
	}
}

func (r *reader) readDict(depth int) (*Value, error) {
	if err := r.expectByte(dictStart); err != nil {
		return nil, err
	}
	dict := make(map[string]*Value)
	for {
		if r.isAtEnd() {
			return nil, newDecodeError(ErrTruncated, r.pos, "unterminated dictionary")
		}
		c := r.buf[r.pos]
		if c == bencodeEnd {
			r.pos++
			return Dict(dict), nil
		}
		if c < 0x30 || c > 0x39 {
			return nil, newDecodeError(ErrMalformed, r.pos, "dictionary keys must be byte strings, got 0x%x", c)
		}
		key, err := r.readBytes()
		if err != nil {
			return nil, err
		}
		val, err := r.readValue(depth + 1)
		if err != nil {
			return nil, err
		}
		// Duplicate keys resolve to the last occurrence.
		dict[string(key.Bytes())] = val
	}
}
