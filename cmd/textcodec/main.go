// Command textcodec compresses or decompresses a file with Huffman or LZW
// coding.
//
// Usage:
//
//     textcodec [-a huffman|lzw] (-e|-d) [-i input] [-o output] [-bits 32] [-hex=true] [-v]
//
// An empty input or output name means standard input or standard output.
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/textcodec"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	algorithm string
	encode    bool
	decode    bool
	input     string
	output    string
	bits      int
	hex       bool
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("textcodec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.algorithm, "a", "huffman", "compression algorithm (huffman or lzw)")
	fs.StringVar(&opts.algorithm, "algorithm", "huffman", "compression algorithm (huffman or lzw)")
	fs.BoolVar(&opts.encode, "e", false, "encode input to output")
	fs.BoolVar(&opts.encode, "encode", false, "encode input to output")
	fs.BoolVar(&opts.decode, "d", false, "decode input to output")
	fs.BoolVar(&opts.decode, "decode", false, "decode input to output")
	fs.StringVar(&opts.input, "i", "", "input file (standard input if empty)")
	fs.StringVar(&opts.input, "input", "", "input file (standard input if empty)")
	fs.StringVar(&opts.output, "o", "", "output file (standard output if empty)")
	fs.StringVar(&opts.output, "output", "", "output file (standard output if empty)")
	fs.IntVar(&opts.bits, "bits", 32, "width in bits of serialized integers (8, 16, 32, or 64)")
	fs.BoolVar(&opts.hex, "hex", true, "serialize integers as hexadecimal text instead of raw bytes")
	fs.BoolVar(&opts.verbose, "v", false, "report byte counts on standard error")

	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "textcodec: unexpected arguments: %q\n", fs.Args())
		fs.Usage()
		return exitUsage
	}
	if opts.encode == opts.decode {
		fmt.Fprintln(stderr, "textcodec: you must choose exactly one of -encode and -decode")
		fs.Usage()
		return exitUsage
	}
	if opts.bits != 8 && opts.bits != 16 && opts.bits != 32 && opts.bits != 64 {
		fmt.Fprintf(stderr, "textcodec: -bits must be 8, 16, 32, or 64, got %d\n", opts.bits)
		return exitUsage
	}
	alg, err := textcodec.ParseAlgorithm(opts.algorithm)
	if err != nil {
		fmt.Fprintf(stderr, "textcodec: %v\n", err)
		return exitUsage
	}

	err = process(alg, opts, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "textcodec: %v\n", err)
		return exitError
	}
	return exitOK
}

func process(alg textcodec.Algorithm, opts options, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	mode := textcodec.Raw
	if opts.hex {
		mode = textcodec.Hex
	}
	codec := textcodec.New(alg, textcodec.NewWordCodec(opts.bits, mode))

	files := fileHandler{input: opts.input, output: opts.output, stdin: stdin, stdout: stdout}
	data, err := files.load()
	if err != nil {
		return err
	}

	verb := "encode"
	transform := codec.Encode
	if opts.decode {
		verb = "decode"
		transform = codec.Decode
	}

	result, err := transform(data)
	if err != nil {
		return fmt.Errorf("%s with %v: %w", verb, alg, err)
	}

	err = files.save(result)
	if err != nil {
		return err
	}

	if opts.verbose {
		p := message.NewPrinter(language.English)
		p.Fprintf(stderr, "textcodec: %sd %d bytes into %d bytes with %v\n", verb, len(data), len(result), alg)
	}
	return nil
}
