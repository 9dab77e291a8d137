package main

import (
	"fmt"
	"io"
	"os"
)

// fileHandler loads the whole input and saves the whole output.  An empty
// name selects the corresponding standard stream.
type fileHandler struct {
	input  string
	output string
	stdin  io.Reader
	stdout io.Writer
}

func (fh fileHandler) load() ([]byte, error) {
	if fh.input == "" {
		data, err := io.ReadAll(fh.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(fh.input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

func (fh fileHandler) save(data []byte) error {
	if fh.output == "" {
		_, err := fh.stdout.Write(data)
		if err != nil {
			return fmt.Errorf("failed to write standard output: %w", err)
		}
		return nil
	}

	err := os.WriteFile(fh.output, data, 0o666)
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
