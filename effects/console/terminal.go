package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var _ Provider = (*Terminal)(nil)

// Terminal is a Provider over a byte stream pair, typically stdin and stdout.
type Terminal struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewTerminal reads lines from r and writes them to w.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// ReadLine returns the next line with "\n" or "\r\n" removed. A final line
// without terminator is still returned; after it reads fail with ErrInputUnavailable.
func (t *Terminal) ReadLine(context.Context) (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read line: %w", err)
		}
		if line == "" {
			return "", ErrInputUnavailable
		}
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

func (t *Terminal) WriteLine(_ context.Context, text string) error {
	if _, err := fmt.Fprintln(t.writer, text); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}
