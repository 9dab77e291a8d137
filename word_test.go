package textcodec

import (
	"errors"
	"math"
	"testing"
)

func TestWordCodec_Hex(t *testing.T) {
	wc := NewWordCodec(32, Hex)

	expectStr := "12345678"
	actualStr := wc.Serialize(305419896)
	if expectStr != actualStr {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectStr, actualStr)
	}

	value, err := wc.Deserialize("12345678")
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if value != 305419896 {
		t.Errorf("expected 305419896, got %d", value)
	}

	if width := wc.SerializedWidth(); width != 8 {
		t.Errorf("expected SerializedWidth 8, got %d", width)
	}
}

func TestWordCodec_Raw(t *testing.T) {
	wc := NewWordCodec(32, Raw)

	str := wc.Serialize(305419896)
	if str != "\x12\x34\x56\x78" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "\x12\x34\x56\x78", str)
	}
	if len(str) != 4 {
		t.Errorf("expected 4 bytes, got %d", len(str))
	}

	value, err := wc.Deserialize(str)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if value != 305419896 {
		t.Errorf("expected 305419896, got %d", value)
	}
}

func TestWordCodec_RoundTrip(t *testing.T) {
	type testRow struct {
		bits  int
		mode  Mode
		value uint64
		str   string
	}

	testData := [...]testRow{
		{bits: 8, mode: Hex, value: 255, str: "ff"},
		{bits: 8, mode: Raw, value: 255, str: "\xff"},
		{bits: 16, mode: Hex, value: 0x0102, str: "0102"},
		{bits: 16, mode: Raw, value: 0x0102, str: "\x01\x02"},
		{bits: 32, mode: Hex, value: math.MaxUint32, str: "ffffffff"},
		{bits: 32, mode: Hex, value: 0, str: "00000000"},
		{bits: 64, mode: Hex, value: 0x0123456789abcdef, str: "0123456789abcdef"},
		{bits: 64, mode: Raw, value: math.MaxUint64, str: "\xff\xff\xff\xff\xff\xff\xff\xff"},
	}
	for _, row := range testData {
		wc := NewWordCodec(row.bits, row.mode)
		t.Run(wc.String(), func(t *testing.T) {
			actualStr := wc.Serialize(row.value)
			if row.str != actualStr {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.str, actualStr)
			}
			if len(actualStr) != wc.SerializedWidth() {
				t.Errorf("expected %d bytes, got %d", wc.SerializedWidth(), len(actualStr))
			}
			value, err := wc.Deserialize(actualStr)
			if err != nil {
				t.Fatalf("Deserialize failed: %v", err)
			}
			if value != row.value {
				t.Errorf("expected %d, got %d", row.value, value)
			}
		})
	}
}

func TestWordCodec_Overflow(t *testing.T) {
	wc := NewWordCodec(8, Hex)
	if str := wc.Serialize(0x1ff); str != "ff" {
		t.Errorf("expected high bits to be discarded, got %q", str)
	}
	if max := wc.MaxValue(); max != 255 {
		t.Errorf("expected MaxValue 255, got %d", max)
	}
	if max := NewWordCodec(64, Raw).MaxValue(); max != math.MaxUint64 {
		t.Errorf("expected MaxValue %d, got %d", uint64(math.MaxUint64), max)
	}
}

func TestWordCodec_LengthMismatch(t *testing.T) {
	type testRow struct {
		name string
		wc   WordCodec
		str  string
	}

	testData := [...]testRow{
		{name: "hex-short", wc: NewWordCodec(32, Hex), str: "1234567"},
		{name: "hex-long", wc: NewWordCodec(32, Hex), str: "123456789"},
		{name: "hex-empty", wc: NewWordCodec(32, Hex), str: ""},
		{name: "raw-short", wc: NewWordCodec(32, Raw), str: "123"},
		{name: "raw-long", wc: NewWordCodec(16, Raw), str: "123"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			value, err := row.wc.Deserialize(row.str)
			if !errors.Is(err, ErrLengthMismatch) {
				t.Errorf("expected ErrLengthMismatch, got %v", err)
			}
			if value != 0 {
				t.Errorf("expected 0, got %d", value)
			}
		})
	}
}

func TestWordCodec_NotHex(t *testing.T) {
	wc := NewWordCodec(32, Hex)
	_, err := wc.Deserialize("1234567g")
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

func TestNewWordCodec_BadWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected NewWordCodec(12, Hex) to panic")
		}
	}()
	NewWordCodec(12, Hex)
}

func TestWordCodec_String(t *testing.T) {
	expectString := "WordCodec(32 bits, hex)"
	actualString := NewWordCodec(32, Hex).String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
	if s := Mode(7).String(); s != "Mode(7)" {
		t.Errorf("expected Mode(7), got %s", s)
	}
}
