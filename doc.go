// Package textcodec implements two lossless text codecs, Huffman coding and
// LZW dictionary coding, behind a common Codec interface.
//
// Both codecs frame their binary metadata (Huffman tree lengths, LZW
// dictionary codes) through an injected WordSerializer, which renders
// fixed-width unsigned integers either as raw big-endian bytes or as
// hexadecimal text.  With a hex WordCodec, the output of either codec is
// plain printable text.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Lempel%E2%80%93Ziv%E2%80%93Welch>
//
package textcodec
