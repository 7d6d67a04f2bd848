package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when standard input ends before a required value.
var ErrNoInput = errors.New("no input")

// inputReader reads secrets and line-oriented batch input. When the
// underlying reader is a terminal, secrets are read with echo disabled.
type inputReader struct {
	lines    *bufio.Reader
	errOut   io.Writer
	fd       int
	terminal bool
}

func newInputReader(in io.Reader, errOut io.Writer) *inputReader {
	r := &inputReader{
		lines:  bufio.NewReader(in),
		errOut: errOut,
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.fd = int(f.Fd())
		r.terminal = true
	}

	return r
}

// ReadSecret prompts with label on a terminal and reads one line without
// echo. Otherwise it reads the next line of input silently.
func (r *inputReader) ReadSecret(label string) (string, error) {
	if r.terminal {
		fmt.Fprint(r.errOut, label)
		b, err := term.ReadPassword(r.fd)
		fmt.Fprintln(r.errOut)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(label, ": "), err)
		}
		return string(b), nil
	}

	return r.readLine()
}

// ReadLines returns every remaining non-empty line.
func (r *inputReader) ReadLines() ([]string, error) {
	var out []string
	for {
		line, err := r.readLine()
		if errors.Is(err, ErrNoInput) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if line != "" {
			out = append(out, line)
		}
	}
}

func (r *inputReader) readLine() (string, error) {
	line, err := r.lines.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", ErrNoInput
		}
		err = nil
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
