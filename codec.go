package textcodec

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Codec is a reversible, lossless transformation of a whole input.
//
// For every byte slice s, Decode(Encode(s)) returns s.  Both methods return
// an empty, non-nil slice for empty input.  On error, the returned slice is
// nil; no partial output is ever returned.
//
type Codec interface {
	Encode(input []byte) ([]byte, error)
	Decode(input []byte) ([]byte, error)
}

// Algorithm names one of the codecs implemented by this package.
type Algorithm byte

const (
	// HuffmanAlgorithm selects Huffman.
	HuffmanAlgorithm Algorithm = iota

	// LZWAlgorithm selects LZW.
	LZWAlgorithm
)

var algorithmNames = [...]string{"huffman", "lzw"}

// ParseAlgorithm returns the Algorithm with the given name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	for index, candidate := range algorithmNames {
		if strings.EqualFold(name, candidate) {
			return Algorithm(index), nil
		}
	}
	return 0, fmt.Errorf("%w %q: expected one of %q", ErrUnknownAlgorithm, name, algorithmNames[:])
}

// String returns the canonical name of this Algorithm.
func (alg Algorithm) String() string {
	if uint(alg) < uint(len(algorithmNames)) {
		return algorithmNames[alg]
	}
	return fmt.Sprintf("Algorithm(%d)", byte(alg))
}

var _ fmt.Stringer = Algorithm(0)

// New constructs a Codec for alg, injecting words as its integer serializer.
func New(alg Algorithm, words WordSerializer) Codec {
	assert.Assertf(words != nil, "New: nil WordSerializer")
	switch alg {
	case HuffmanAlgorithm:
		return NewHuffman(words)
	case LZWAlgorithm:
		return NewLZW(words)
	default:
		panic(fmt.Errorf("New: unknown %v", alg))
	}
}
