package textcodec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// WordSerializer converts fixed-width unsigned integers to and from strings.
// The codecs in this package use it for every integer they write.
type WordSerializer interface {
	// Serialize renders value.  The result always has exactly
	// SerializedWidth() bytes.
	Serialize(value uint64) string

	// Deserialize parses a string produced by Serialize.
	Deserialize(str string) (uint64, error)

	// SerializedWidth is the number of bytes produced by Serialize.
	SerializedWidth() int
}

// Mode selects how a WordCodec renders integers.
type Mode byte

const (
	// Raw renders an integer as its bytes, most significant byte first.
	Raw Mode = iota

	// Hex renders an integer as lowercase hexadecimal text, most
	// significant nibble first.
	Hex
)

var modeNames = [...]string{"raw", "hex"}

// String returns "raw" or "hex".
func (mode Mode) String() string {
	if uint(mode) < uint(len(modeNames)) {
		return modeNames[mode]
	}
	return fmt.Sprintf("Mode(%d)", byte(mode))
}

var _ fmt.Stringer = Mode(0)

// WordCodec is the standard WordSerializer.  The zero value is not usable;
// construct one with NewWordCodec.
type WordCodec struct {
	size byte
	mode Mode
}

// NewWordCodec returns a WordCodec for unsigned integers of the given bit
// width, which must be 8, 16, 32, or 64.
func NewWordCodec(bits int, mode Mode) WordCodec {
	assert.Assertf(bits == 8 || bits == 16 || bits == 32 || bits == 64, "NewWordCodec: unsupported width %d bits", bits)
	assert.Assertf(mode == Raw || mode == Hex, "NewWordCodec: unsupported mode %v", mode)
	return WordCodec{size: byte(bits / 8), mode: mode}
}

// Bits returns the integer width in bits.
func (wc WordCodec) Bits() int {
	return int(wc.size) * 8
}

// Mode returns the rendering mode.
func (wc WordCodec) Mode() Mode {
	return wc.mode
}

// MaxValue returns the largest integer that survives a round trip.
func (wc WordCodec) MaxValue() uint64 {
	return uint64(math.MaxUint64) >> (64 - wc.Bits())
}

// SerializedWidth returns the number of bytes Serialize always produces.
func (wc WordCodec) SerializedWidth() int {
	if wc.mode == Hex {
		return int(wc.size) * 2
	}
	return int(wc.size)
}

// Serialize renders value.  Bits above the configured width are discarded.
func (wc WordCodec) Serialize(value uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], value)
	raw := buf[8-wc.size:]
	if wc.mode == Hex {
		return hex.EncodeToString(raw)
	}
	return string(raw)
}

// Deserialize parses str, which must be exactly SerializedWidth() bytes long.
func (wc WordCodec) Deserialize(str string) (uint64, error) {
	if width := wc.SerializedWidth(); len(str) != width {
		return 0, fmt.Errorf("%w: %v expects %d bytes, got %d", ErrLengthMismatch, wc, width, len(str))
	}

	raw := []byte(str)
	if wc.mode == Hex {
		var err error
		raw, err = hex.DecodeString(str)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not hexadecimal: %v", ErrMalformedInput, str, err)
		}
	}

	var value uint64
	for _, b := range raw {
		value = value<<8 | uint64(b)
	}
	return value, nil
}

// String returns a programmer-readable description of this WordCodec.
func (wc WordCodec) String() string {
	return fmt.Sprintf("WordCodec(%d bits, %v)", wc.Bits(), wc.mode)
}

var _ WordSerializer = WordCodec{}
var _ fmt.Stringer = WordCodec{}
