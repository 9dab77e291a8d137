package textcodec

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// numSeedCodes is the number of single-byte strings every LZW dictionary
// starts with.
const numSeedCodes = 256

// LZW implements a Codec using Lempel-Ziv-Welch dictionary coding.  The
// output is the concatenation of the emitted dictionary codes, each rendered
// by the WordSerializer, with no header and no delimiters.
//
// Codes grow without bound, so the WordSerializer must be wide enough for
// the largest code the input produces; wider codes are silently truncated.
//
type LZW struct {
	words WordSerializer
}

// NewLZW constructs an LZW codec that renders codes with the given
// WordSerializer.
func NewLZW(words WordSerializer) *LZW {
	return &LZW{words: words}
}

// Encode compresses input.  Empty input encodes to empty output.
func (c *LZW) Encode(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}

	dict := newDictionary()
	output := make([]byte, 0, c.words.SerializedWidth()*(len(input)/2+1))
	emit := func(str []byte) {
		code, found := dict.lookup(str)
		assert.Assertf(found, "LZW.Encode: %q missing from dictionary", str)
		output = append(output, c.words.Serialize(code)...)
	}

	// input[start:i] is the longest dictionary-resident prefix seen so far.
	start := 0
	for i := 1; i < len(input); i++ {
		if _, found := dict.lookup(input[start : i+1]); found {
			continue
		}
		emit(input[start:i])
		dict.add(input[start : i+1])
		start = i
	}
	emit(input[start:])
	return output, nil
}

// Decode reverses Encode.  Empty input decodes to empty output.  Input whose
// length is not a multiple of the serialized width, or which contains a code
// the decoder's dictionary cannot yet know, yields an error wrapping
// ErrMalformedInput.
func (c *LZW) Decode(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}

	width := c.words.SerializedWidth()
	if len(input)%width != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of the %d-byte code width", ErrMalformedInput, len(input), width)
	}

	numCodes := len(input) / width
	codes := make([]uint64, numCodes)
	for i := 0; i < numCodes; i++ {
		code, err := c.words.Deserialize(string(input[i*width : (i+1)*width]))
		if err != nil {
			return nil, fmt.Errorf("%w: code at index %d: %v", ErrMalformedInput, i, err)
		}
		codes[i] = code
	}

	inverse := newInverseDictionary()
	if codes[0] >= numSeedCodes {
		return nil, fmt.Errorf("%w: first code %d is not a single-byte code", ErrMalformedInput, codes[0])
	}

	current := inverse.entries[codes[0]]
	output := make([]byte, 0, 2*len(input))
	output = append(output, current...)

	for i := 1; i < numCodes; i++ {
		code := codes[i]
		var entry []byte
		switch next := inverse.nextCode(); {
		case code < next:
			entry = inverse.entries[code]
		case code == next:
			// The code being defined by this very step: current followed
			// by its own first byte.
			entry = concat(current, current[0])
		default:
			return nil, fmt.Errorf("%w: unexpected code %d at index %d, next code is %d", ErrMalformedInput, code, i, next)
		}

		output = append(output, entry...)
		inverse.add(concat(current, entry[0]))
		current = entry
	}
	return output, nil
}

// type dictionary + type inverseDictionary {{{

// dictionary maps strings to codes for the encoder.
type dictionary struct {
	codes map[string]uint64
	next  uint64
}

func newDictionary() *dictionary {
	d := &dictionary{codes: make(map[string]uint64, 2*numSeedCodes)}
	for ch := 0; ch < numSeedCodes; ch++ {
		d.add([]byte{byte(ch)})
	}
	return d
}

func (d *dictionary) lookup(str []byte) (uint64, bool) {
	code, found := d.codes[string(str)]
	return code, found
}

func (d *dictionary) add(str []byte) {
	d.codes[string(str)] = d.next
	d.next++
}

// inverseDictionary maps codes to strings for the decoder.  Codes are
// assigned densely from 0, so the code of an entry is its index.
type inverseDictionary struct {
	entries [][]byte
}

func newInverseDictionary() *inverseDictionary {
	d := &inverseDictionary{entries: make([][]byte, 0, 2*numSeedCodes)}
	for ch := 0; ch < numSeedCodes; ch++ {
		d.add([]byte{byte(ch)})
	}
	return d
}

func (d *inverseDictionary) nextCode() uint64 {
	return uint64(len(d.entries))
}

func (d *inverseDictionary) add(str []byte) {
	d.entries = append(d.entries, str)
}

// }}}

var _ Codec = (*LZW)(nil)

func concat(prefix []byte, last byte) []byte {
	out := make([]byte, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = last
	return out
}
