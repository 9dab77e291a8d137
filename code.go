package textcodec

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the maximum number of bits in a Code.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a non-empty string of '0' and '1' characters, first bit
// first, into a Code.
func ParseCode(text string) (Code, error) {
	if len(text) == 0 {
		return Code{}, fmt.Errorf("%w: empty code", ErrMalformedInput)
	}
	if len(text) > MaxCodeSize {
		return Code{}, fmt.Errorf("%w: code of %d bits exceeds maximum of %d", ErrMalformedInput, len(text), MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("%w: invalid bit %q in code %q", ErrMalformedInput, text[i], text)
		}
	}
	return hc, nil
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "Code.Append: code already holds %d bits", hc.Size)
	assert.Assertf(bit <= 1, "Code.Append: bit %d is not 0 or 1", bit)
	return Code{Size: hc.Size + 1, Bits: hc.Bits | uint64(bit)<<hc.Size}
}

// Bit returns the i'th bit of this Code, counting from the first.
func (hc Code) Bit(i byte) uint {
	return uint(hc.Bits>>i) & 1
}

// AppendText appends the '0'/'1' rendering of this Code to dst.
func (hc Code) AppendText(dst []byte) []byte {
	for i := byte(0); i < hc.Size; i++ {
		dst = append(dst, '0'+byte(hc.Bit(i)))
	}
	return dst
}

// Text returns the '0'/'1' rendering of this Code, first bit first.
func (hc Code) Text() string {
	return string(hc.AppendText(make([]byte, 0, hc.Size)))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Text())
}

var _ fmt.Stringer = Code{}
