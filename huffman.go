package textcodec

import (
	"bytes"
	"fmt"
	"io"
)

// Huffman implements a Codec using Huffman coding with a self-describing,
// text-safe framing:
//
//     <tree length, as rendered by the WordSerializer> '\n'
//     <tree: one "<symbol><code> " entry per symbol> '\n'
//     <one '0'/'1' character per coded bit> '\n'
//
// A Huffman holds the tree and code table of its most recent call, so it
// must not be used by more than one goroutine at a time.
//
type Huffman struct {
	words WordSerializer
	tree  tree
	codes [256]Code
}

// NewHuffman constructs a Huffman codec that frames its tree length with
// the given WordSerializer.
func NewHuffman(words WordSerializer) *Huffman {
	return &Huffman{words: words, tree: tree{root: noNode}}
}

// Encode compresses input.  Empty input encodes to empty output.
func (c *Huffman) Encode(input []byte) ([]byte, error) {
	c.codes = [256]Code{}
	if len(input) == 0 {
		c.tree.reset(0)
		return []byte{}, nil
	}

	var frequencies [256]uint64
	for _, ch := range input {
		frequencies[ch]++
	}

	c.tree.build(&frequencies)
	c.tree.assignCodes(&c.codes)

	var texts [256][]byte
	var treeBuf []byte
	var bitCount uint64
	for symbol, freq := range frequencies {
		hc := c.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		texts[symbol] = hc.AppendText(nil)
		treeBuf = append(treeBuf, byte(symbol))
		treeBuf = append(treeBuf, texts[symbol]...)
		treeBuf = append(treeBuf, ' ')
		bitCount += freq * uint64(hc.Size)
	}

	header := c.words.Serialize(uint64(len(treeBuf)))
	output := make([]byte, 0, uint64(len(header)+len(treeBuf)+3)+bitCount)
	output = append(output, header...)
	output = append(output, '\n')
	output = append(output, treeBuf...)
	output = append(output, '\n')
	for _, ch := range input {
		output = append(output, texts[ch]...)
	}
	output = append(output, '\n')
	return output, nil
}

// Decode reverses Encode.  Empty input decodes to empty output.  Input that
// is truncated, whose tree is inconsistent, or whose bits do not follow a
// path through the tree yields an error wrapping ErrMalformedInput.
func (c *Huffman) Decode(input []byte) ([]byte, error) {
	c.codes = [256]Code{}
	c.tree.reset(0)
	if len(input) == 0 {
		return []byte{}, nil
	}

	treeText, bits, err := c.split(input)
	if err != nil {
		return nil, err
	}

	err = c.parseTree(treeText)
	if err != nil {
		return nil, err
	}

	var output []byte
	n := c.tree.root
	for index, ch := range bits {
		var bit uint
		switch ch {
		case '0':
			bit = 0
		case '1':
			bit = 1
		default:
			return nil, fmt.Errorf("%w: invalid bit %q at offset %d of the bitstream", ErrMalformedInput, ch, index)
		}

		next, ok := c.tree.step(n, bit)
		if !ok {
			return nil, fmt.Errorf("%w: bit %d at offset %d of the bitstream has no path in the tree", ErrMalformedInput, bit, index)
		}
		n = next

		if nd := c.tree.nodes[n]; nd.leaf {
			output = append(output, nd.symbol)
			n = c.tree.root
		}
	}
	if n != c.tree.root {
		return nil, fmt.Errorf("%w: bitstream ends in the middle of a code", ErrMalformedInput)
	}
	if output == nil {
		output = []byte{}
	}
	return output, nil
}

// split separates the framed input into its tree text and its bit string,
// with all framing newlines removed.
func (c *Huffman) split(input []byte) (treeText []byte, bits []byte, err error) {
	width := c.words.SerializedWidth()
	if len(input) < width+1 {
		return nil, nil, fmt.Errorf("%w: %d bytes is too short for a %d-byte tree length header", ErrMalformedInput, len(input), width)
	}

	treeLen, err := c.words.Deserialize(string(input[:width]))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad tree length header: %v", ErrMalformedInput, err)
	}
	if input[width] != '\n' {
		return nil, nil, fmt.Errorf("%w: expected newline after tree length header, got %q", ErrMalformedInput, input[width])
	}

	rest := input[width+1:]
	if treeLen >= uint64(len(rest)) {
		return nil, nil, fmt.Errorf("%w: tree length %d overruns the %d bytes that follow the header", ErrMalformedInput, treeLen, len(rest))
	}
	treeText = rest[:treeLen]
	if rest[treeLen] != '\n' {
		return nil, nil, fmt.Errorf("%w: expected newline after tree, got %q", ErrMalformedInput, rest[treeLen])
	}

	bits = rest[treeLen+1:]
	if len(bits) == 0 || bits[len(bits)-1] != '\n' {
		return nil, nil, fmt.Errorf("%w: missing newline after bitstream", ErrMalformedInput)
	}
	return treeText, bits[:len(bits)-1], nil
}

// parseTree rebuilds the tree and code table from the serialized tree.
//
// Each entry is one symbol byte followed by the symbol's code and a space.
// The first byte of an entry is always taken as the symbol and codes never
// contain spaces, so symbols that coincide with the framing characters
// parse unambiguously.
//
func (c *Huffman) parseTree(treeText []byte) error {
	c.tree.reset(2 * log2int(len(treeText)))

	var seen [256]bool
	index := 0
	for index < len(treeText) {
		symbol := treeText[index]
		index++

		end := bytes.IndexByte(treeText[index:], ' ')
		if end < 0 {
			return fmt.Errorf("%w: unterminated tree entry for symbol %q", ErrMalformedInput, symbol)
		}
		codeText := treeText[index : index+end]
		index += end + 1

		if seen[symbol] {
			return fmt.Errorf("%w: symbol %q appears twice in the tree", ErrMalformedInput, symbol)
		}
		seen[symbol] = true

		hc, err := ParseCode(string(codeText))
		if err != nil {
			return fmt.Errorf("tree entry for symbol %q: %w", symbol, err)
		}
		err = c.tree.insert(symbol, hc)
		if err != nil {
			return err
		}
		c.codes[symbol] = hc
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the code table built
// by the most recent call to Encode or Decode.
func (c *Huffman) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Huffman{\n")
	for symbol, hc := range c.codes {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", byte(symbol), hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ Codec = (*Huffman)(nil)
