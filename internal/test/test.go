package test

import (
	"math/rand"

	fraux "github.com/xh-gotz9/go-fraux"
)

const keyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomBytes(r *rand.Rand) []byte {
	b := make([]byte, r.Intn(24))
	r.Read(b)
	return b
}

func randomKey(r *rand.Rand) string {
	b := make([]byte, 1+r.Intn(8))
	for i := range b {
		b[i] = keyAlphabet[r.Intn(len(keyAlphabet))]
	}
	return string(b)
}

// RandomValue builds an arbitrary document for round-trip property tests.
// Containers shrink as depth grows so generation always terminates.
func RandomValue(r *rand.Rand, depth int) *fraux.Value {
	variants := 4
	if depth <= 0 {
		variants = 2
	}
	switch r.Intn(variants) {
	case 0:
		return fraux.Bytes(randomBytes(r))
	case 1:
		return fraux.Integer(int32(r.Uint32()))
	case 2:
		elems := make([]*fraux.Value, r.Intn(5))
		for i := range elems {
			elems[i] = RandomValue(r, depth-1)
		}
		return fraux.List(elems...)
	default:
		entries := make(map[string]*fraux.Value)
		n := r.Intn(5)
		for i := 0; i != n; i++ {
			entries[randomKey(r)] = RandomValue(r, depth-1)
		}
		return fraux.Dict(entries)
	}
}
