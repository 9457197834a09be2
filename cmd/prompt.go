package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidAnswer is returned when the user answers neither y nor n.
var ErrInvalidAnswer = errors.New("invalid answer")

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// LinePrompter reads one whitespace-trimmed line per question.
type LinePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewLinePrompter creates a LinePrompter reading answers from in and
// writing questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewScanner(in), out: out}
}

func (p *LinePrompter) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "%s (y - yes, n - no)\n", question); err != nil {
		return false, err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return false, err
		}
		return false, fmt.Errorf("%w: no answer given", ErrInvalidAnswer)
	}
	switch answer := strings.TrimSpace(p.in.Text()); answer {
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidAnswer, answer)
	}
}

// Print modes for the --print flag.
const (
	printAsk = "ask"
	printYes = "yes"
	printNo  = "no"
)

var validPrintModes = map[string]bool{printAsk: true, printYes: true, printNo: true}

// shouldPrint resolves a print mode, asking p only in ask mode.
func shouldPrint(mode string, p Prompter) (bool, error) {
	switch mode {
	case printYes:
		return true, nil
	case printNo:
		return false, nil
	case printAsk:
		return p.Confirm("Show all primes found?")
	default:
		return false, fmt.Errorf("unknown print mode %q (want ask, yes or no)", mode)
	}
}
