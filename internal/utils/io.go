package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoPipedInput is returned when input is a terminal rather than a pipe.
var ErrNoPipedInput = errors.New("no data provided on stdin (hint: pipe a settings file to this command)")

// ReadStdin reads all piped content from stdin.
func ReadStdin() ([]byte, error) {
	return ReadPiped(os.Stdin)
}

// ReadPiped reads all content from f. It refuses to block on a terminal and
// treats empty input as an error.
func ReadPiped(f *os.File) ([]byte, error) {
	if IsTerminal(f) {
		return nil, ErrNoPipedInput
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read from %s: %w", f.Name(), err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty", f.Name())
	}
	return data, nil
}
