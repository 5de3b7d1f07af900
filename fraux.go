// This package defines a bencode codec built around an explicit value model. A
// document is decoded into a tree of Values which can be inspected, compared and
// re-encoded into canonical form (dictionary keys sorted by ascending byte value,
// minimal integer representation). On top of the value model it provides
// marshalling for structs annotated with `bencode:".."` tags.
package fraux

const (
	numberStart    = 0x69
	dictStart      = 0x64
	listStart      = 0x6c
	bencodeEnd     = 0x65
	bytesLengthSep = 0x3a
)

// Kind discriminates the four bencode value variants.
type Kind uint8

const (
	KindBytes Kind = iota
	KindInteger
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindInteger:
		return "integer"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// DefaultMaxDepth bounds container nesting during decoding. Recursion depth
// equals nesting depth, so untrusted input must not be allowed to grow the
// call stack without limit.
const DefaultMaxDepth = 2048
