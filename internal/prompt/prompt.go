// Package prompt reads answers to interactive questions from a line-based reader.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	oerrors "github.com/crocofactory/croco-cli/internal/errors"
)

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// New creates a Prompter.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// Echo writes a line of text to the prompt output.
func (p *Prompter) Echo(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Input asks for free text and returns the trimmed answer.
// Empty answers are asked again.
func (p *Prompter) Input(label string) (string, error) {
	for {
		fmt.Fprintf(p.w, "%s: ", label)

		line, err := p.readLine()
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// Confirm asks a yes/no question. An empty answer selects def.
// Unrecognized answers are asked again.
func (p *Prompter) Confirm(label string, def bool) (bool, error) {
	choices := "[y/N]"
	if def {
		choices = "[Y/n]"
	}

	for {
		fmt.Fprintf(p.w, "%s %s: ", label, choices)

		line, err := p.readLine()
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			if err != nil {
				return false, err
			}
			return def, nil
		}

		if err != nil {
			return false, err
		}
		fmt.Fprintln(p.w, "Error: invalid input")
	}
}

// readLine returns the next trimmed line. A final line without a newline is
// returned together with ErrAborted so callers can still use it.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return line, fmt.Errorf("reading answer: %w", oerrors.ErrAborted)
		}
		return line, fmt.Errorf("reading answer: %w", err)
	}
	return line, nil
}
